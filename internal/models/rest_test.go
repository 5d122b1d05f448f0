package models_test

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"testing"

	"codeberg.org/snonux/modelcheck/internal/models"
	"codeberg.org/snonux/modelcheck/internal/testutil"
)

const catalogBody = `{
  "models": [
    {"name": "models/A", "displayName": "A", "supportedGenerationMethods": ["generateContent"]},
    {"name": "models/B", "supportedGenerationMethods": ["embedContent"]},
    {"name": "models/C", "inputTokenLimit": 1024}
  ],
  "nextPageToken": "ignored"
}`

func newRESTSource(t *testing.T, server *testutil.ModelServer) models.Source {
	t.Helper()

	source, err := models.NewSource(&models.Config{
		Provider:   models.ProviderGemini,
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	return source
}

func TestRESTSource_Request(t *testing.T) {
	server := testutil.NewModelServer(t, http.StatusOK, `{"models": []}`)
	source := newRESTSource(t, server)

	if _, err := source.Fetch(context.Background(), "key with/special&chars"); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	requests := server.Requests()
	if len(requests) != 1 {
		t.Fatalf("Expected exactly one request, got %d", len(requests))
	}

	req := requests[0]
	if req.Method != http.MethodGet {
		t.Errorf("Expected GET, got %s", req.Method)
	}
	if req.URL.Path != "/v1beta/models" {
		t.Errorf("Expected path /v1beta/models, got %s", req.URL.Path)
	}
	if got := req.URL.Query().Get("key"); got != "key with/special&chars" {
		t.Errorf("Expected key query parameter to round-trip, got %q", got)
	}
}

func TestRESTSource_Decode(t *testing.T) {
	server := testutil.NewModelServer(t, http.StatusOK, catalogBody)
	source := newRESTSource(t, server)

	descriptors, err := source.Fetch(context.Background(), "test-key")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(descriptors) != 3 {
		t.Fatalf("Expected 3 descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Name != "models/A" || !descriptors[0].Supports("generateContent") {
		t.Errorf("Unexpected first descriptor: %+v", descriptors[0])
	}
	if descriptors[2].SupportedGenerationMethods != nil {
		t.Errorf("Expected nil methods for models/C, got %v", descriptors[2].SupportedGenerationMethods)
	}
	if descriptors[2].Supports("generateContent") {
		t.Error("Descriptor without methods must not support generateContent")
	}
}

func TestRESTSource_MissingModelsField(t *testing.T) {
	server := testutil.NewModelServer(t, http.StatusOK, `{}`)
	source := newRESTSource(t, server)

	descriptors, err := source.Fetch(context.Background(), "test-key")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(descriptors) != 0 {
		t.Errorf("Expected no descriptors, got %v", descriptors)
	}
}

func TestRESTSource_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		isStatus bool
	}{
		{"invalid json", http.StatusOK, `<html>not json</html>`, "invalid JSON in model list response", false},
		{"truncated json", http.StatusOK, `{"models": [`, "invalid JSON in model list response", false},
		{"null body", http.StatusOK, `null`, "not a JSON object", false},
		{"null models", http.StatusOK, `{"models": null}`, `invalid field "models"`, false},
		{"null methods", http.StatusOK, `{"models": [{"name": "A", "supportedGenerationMethods": null}]}`, `invalid field "supportedGenerationMethods"`, false},
		{"bad request", http.StatusBadRequest, `{"error": {"message": "API key not valid"}}`, "HTTP Error 400", true},
		{"forbidden", http.StatusForbidden, ``, "HTTP Error 403", true},
		{"server error", http.StatusInternalServerError, `oops`, "HTTP Error 500", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewModelServer(t, tt.status, tt.body)
			source := newRESTSource(t, server)

			_, err := source.Fetch(context.Background(), "test-key")
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected error containing %q, got: %v", tt.wantMsg, err)
			}
			if strings.Contains(err.Error(), "not json") {
				t.Errorf("Error message echoes the response body: %v", err)
			}

			var statusErr *models.StatusError
			if got := errors.As(err, &statusErr); got != tt.isStatus {
				t.Errorf("errors.As(*StatusError) = %v, want %v", got, tt.isStatus)
			}
			if tt.isStatus && statusErr.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, statusErr.StatusCode)
			}
		})
	}
}

func TestList_MissingName(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  string
		expected []string
	}{
		{
			name:    "qualifying entry without name",
			body:    `{"models": [{"name": "A", "supportedGenerationMethods": ["generateContent"]}, {"supportedGenerationMethods": ["generateContent"]}]}`,
			wantErr: `missing field "name" in model entry 1`,
		},
		{
			name:     "non-qualifying entry without name",
			body:     `{"models": [{"supportedGenerationMethods": ["embedContent"]}, {"name": "B", "supportedGenerationMethods": ["generateContent"]}]}`,
			expected: []string{"B"},
		},
		{
			name:     "empty name is still a name",
			body:     `{"models": [{"name": "", "supportedGenerationMethods": ["generateContent"]}]}`,
			expected: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewModelServer(t, http.StatusOK, tt.body)
			lister := models.NewLister(newRESTSource(t, server), "", nil)

			names, err := lister.List(context.Background(), "test-key")
			if tt.wantErr != "" {
				var failure *models.RequestFailure
				if !errors.As(err, &failure) {
					t.Fatalf("Expected *RequestFailure, got %v", err)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("Expected error %q, got %q", tt.wantErr, err.Error())
				}
				if names != nil {
					t.Error("Expected no names on failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if got := slices.Collect(names); !slices.Equal(got, tt.expected) {
				t.Errorf("List() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRESTSource_TransportError(t *testing.T) {
	server := testutil.NewModelServer(t, http.StatusOK, `{}`)
	source := newRESTSource(t, server)
	server.Close()

	lister := models.NewLister(source, "", nil)
	_, err := lister.List(context.Background(), "closed-server-key")
	if err == nil {
		t.Fatal("Expected error from closed server")
	}
	if strings.Contains(err.Error(), "closed-server-key") {
		t.Errorf("Error message leaks the credential: %v", err)
	}
}

func TestRESTSource_Idempotent(t *testing.T) {
	server := testutil.NewModelServer(t, http.StatusOK, catalogBody)
	lister := models.NewLister(newRESTSource(t, server), "", nil)

	var runs [][]string
	for range 2 {
		names, err := lister.List(context.Background(), "test-key")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		runs = append(runs, slices.Collect(names))
	}

	if !slices.Equal(runs[0], runs[1]) {
		t.Errorf("Runs differ: %v vs %v", runs[0], runs[1])
	}
	if !slices.Equal(runs[0], []string{"models/A"}) {
		t.Errorf("Expected [models/A], got %v", runs[0])
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		provider string
		expected string
		wantErr  bool
	}{
		{"", models.ProviderGemini, false},
		{models.ProviderGemini, models.ProviderGemini, false},
		{models.ProviderGenAI, models.ProviderGenAI, false},
		{models.ProviderOpenAI, models.ProviderOpenAI, false},
		{"anthropic", "", true},
	}

	for _, tt := range tests {
		t.Run("provider_"+tt.provider, func(t *testing.T) {
			source, err := models.NewSource(&models.Config{Provider: tt.provider})
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error for unknown provider")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSource failed: %v", err)
			}
			if source.Name() != tt.expected {
				t.Errorf("Name() = %q, want %q", source.Name(), tt.expected)
			}
		})
	}

	if source, err := models.NewSource(nil); err != nil || source.Name() != models.ProviderGemini {
		t.Errorf("NewSource(nil) = %v, %v; want gemini source", source, err)
	}
}
