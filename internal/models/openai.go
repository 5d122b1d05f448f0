package models

import (
	"context"
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Generation methods inferred for OpenAI models
const (
	GenerateSpeech = "generateSpeech"
	GenerateImage  = "generateImage"
	EmbedContent   = "embedContent"
)

var reasoningModel = regexp.MustCompile(`^o\d`)

// OpenAISource lists models from the OpenAI API. OpenAI does not report
// generation methods, so they are derived from the model id.
type OpenAISource struct {
	config *Config
	logger *zap.Logger
}

// NewOpenAISource creates a source backed by go-openai
func NewOpenAISource(config *Config) *OpenAISource {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAISource{config: config, logger: logger}
}

// Name returns the provider name
func (s *OpenAISource) Name() string {
	return ProviderOpenAI
}

// Fetch calls the models endpoint once
func (s *OpenAISource) Fetch(ctx context.Context, credential string) ([]Descriptor, error) {
	clientConfig := openai.DefaultConfig(credential)
	if s.config.BaseURL != "" {
		clientConfig.BaseURL = s.config.BaseURL
	}
	if s.config.HTTPClient != nil {
		clientConfig.HTTPClient = s.config.HTTPClient
	}

	list, err := openai.NewClientWithConfig(clientConfig).ListModels(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("openai model list", zap.Int("items", len(list.Models)))

	descriptors := make([]Descriptor, 0, len(list.Models))
	for _, m := range list.Models {
		descriptors = append(descriptors, Descriptor{
			Name:                       m.ID,
			SupportedGenerationMethods: openAIMethods(m.ID),
		})
	}
	return descriptors, nil
}

// openAIMethods categorizes a model by its id
func openAIMethods(id string) []string {
	switch {
	case strings.Contains(id, "tts") || strings.Contains(id, "audio"):
		return []string{GenerateSpeech}
	case strings.Contains(id, "dall-e") || strings.Contains(id, "image"):
		return []string{GenerateImage}
	case strings.Contains(id, "embedding"):
		return []string{EmbedContent}
	case strings.Contains(id, "gpt") || strings.Contains(id, "chat") || reasoningModel.MatchString(id):
		return []string{GenerateContent}
	default:
		return nil
	}
}
