package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient creates an OpenAI client for the given credential. An empty
// baseURL keeps the public API endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}
