package whisper

import (
	"fmt"

	"github.com/ahitagnied/lotus-app/internal/app/api"
	"github.com/ahitagnied/lotus-app/internal/app/api/openai"
	"github.com/ahitagnied/lotus-app/internal/app/api/provider"
	"github.com/ahitagnied/lotus-app/internal/config"
)

func init() {
	// Register openai provider with the factory
	provider.RegisterProvider(providerName, createOpenAIProvider)
}

// createOpenAIProvider creates an OpenAI Whisper provider from configuration
func createOpenAIProvider(cfg config.ProviderConfig) (api.Transcriber, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai provider requires an API key")
	}
	return NewRemoteTranscriber(openai.NewClient(cfg.APIKey, cfg.BaseURL), cfg.Model), nil
}
