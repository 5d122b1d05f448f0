package models

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Source fetches the raw model catalog for a credential
type Source interface {
	// Fetch performs exactly one listing request and returns the decoded catalog
	Fetch(ctx context.Context, credential string) ([]Descriptor, error)

	// Name returns the provider name
	Name() string
}

// Provider names accepted by NewSource
const (
	ProviderGemini = "gemini"
	ProviderGenAI  = "genai"
	ProviderOpenAI = "openai"
)

// Config holds the settings shared by all sources
type Config struct {
	Provider string // "gemini", "genai" or "openai"
	BaseURL  string // Empty means the provider default

	// HTTPClient is used for the listing request. nil means http.DefaultClient.
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// DefaultConfig returns the configuration that mirrors the plain REST call
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
	}
}

// NewSource creates the source selected by config.Provider
func NewSource(config *Config) (Source, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	switch config.Provider {
	case ProviderGemini, "":
		return NewRESTSource(config), nil
	case ProviderGenAI:
		return NewGenAISource(config), nil
	case ProviderOpenAI:
		return NewOpenAISource(config), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: gemini, genai, openai)", config.Provider)
	}
}

// CredentialEnv names the environment variable that holds the key for a provider
func CredentialEnv(provider string) string {
	if provider == ProviderOpenAI {
		return "OPENAI_API_KEY"
	}
	return "GEMINI_API_KEY"
}
