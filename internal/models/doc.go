// Package models lists the generative AI models available to an API key
// and filters them by the generation method they support. The default
// source talks to the Gemini REST endpoint directly; the Gen AI SDK and
// OpenAI are available as alternative sources.
package models
