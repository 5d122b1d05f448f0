package models

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GenAISource lists models through the Google Gen AI SDK
type GenAISource struct {
	config *Config
	logger *zap.Logger
}

// NewGenAISource creates a source backed by google.golang.org/genai
func NewGenAISource(config *Config) *GenAISource {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenAISource{config: config, logger: logger}
}

// Name returns the provider name
func (s *GenAISource) Name() string {
	return ProviderGenAI
}

// Fetch requests a single page of models. The SDK reports the generation
// methods as SupportedActions.
func (s *GenAISource) Fetch(ctx context.Context, credential string) ([]Descriptor, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:     credential,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: s.config.HTTPClient,
	}
	if s.config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: s.config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	page, err := client.Models.List(ctx, &genai.ListModelsConfig{})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("genai model page", zap.Int("items", len(page.Items)))

	descriptors := make([]Descriptor, 0, len(page.Items))
	for _, m := range page.Items {
		if m == nil {
			continue
		}
		descriptors = append(descriptors, Descriptor{
			Name:                       m.Name,
			SupportedGenerationMethods: m.SupportedActions,
		})
	}
	return descriptors, nil
}
