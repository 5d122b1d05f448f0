package models

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// DefaultGeminiBaseURL is the public Gemini API host
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// RESTSource lists models with a plain GET against the v1beta endpoint
type RESTSource struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewRESTSource creates a source for the Gemini REST API
func NewRESTSource(config *Config) *RESTSource {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RESTSource{baseURL: baseURL, client: client, logger: logger}
}

// Name returns the provider name
func (s *RESTSource) Name() string {
	return ProviderGemini
}

// Fetch issues GET <base>/v1beta/models?key=<credential> and decodes the reply
func (s *RESTSource) Fetch(ctx context.Context, credential string) ([]Descriptor, error) {
	endpoint, err := s.endpoint(credential)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	s.logger.Debug("model list response", zap.Int("status", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	list, err := DecodeListResponse(body)
	if err != nil {
		cause := err
		var decErr *decodeError
		if errors.As(err, &decErr) {
			cause = decErr.cause
		}
		s.logger.Debug("model list rejected", zap.Error(cause))
		return nil, err
	}

	return list.Models, nil
}

func (s *RESTSource) endpoint(credential string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", s.baseURL, err)
	}
	u = u.JoinPath("v1beta", "models")
	u.RawQuery = url.Values{"key": {credential}}.Encode()
	return u.String(), nil
}
