package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"codeberg.org/snonux/modelcheck/internal/models"
)

// ModelServer serves a fixed reply for every request and records the calls
type ModelServer struct {
	*httptest.Server

	StatusCode int
	Body       string

	mu       sync.Mutex
	requests []*http.Request
}

// NewModelServer starts a server that answers with status and body.
// It is closed when the test finishes.
func NewModelServer(t *testing.T, status int, body string) *ModelServer {
	t.Helper()

	ms := &ModelServer{StatusCode: status, Body: body}
	ms.Server = httptest.NewServer(http.HandlerFunc(ms.handle))
	t.Cleanup(ms.Close)
	return ms
}

func (ms *ModelServer) handle(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	ms.requests = append(ms.requests, r.Clone(context.Background()))
	ms.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ms.StatusCode)
	w.Write([]byte(ms.Body))
}

// Requests returns the requests received so far
func (ms *ModelServer) Requests() []*http.Request {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]*http.Request(nil), ms.requests...)
}

// MockSource returns canned descriptors or an error
type MockSource struct {
	Descriptors  []models.Descriptor
	Err          error
	ProviderName string

	Calls       int
	Credentials []string
}

// Fetch records the call and returns the canned result
func (m *MockSource) Fetch(ctx context.Context, credential string) ([]models.Descriptor, error) {
	m.Calls++
	m.Credentials = append(m.Credentials, credential)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Descriptors, nil
}

// Name returns the configured provider name, "mock" by default
func (m *MockSource) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}
