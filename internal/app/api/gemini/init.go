package gemini

import (
	"context"
	"fmt"

	"github.com/ahitagnied/lotus-app/internal/app/api"
	"github.com/ahitagnied/lotus-app/internal/app/api/provider"
	"github.com/ahitagnied/lotus-app/internal/config"
)

func init() {
	provider.RegisterProvider(providerName, createGeminiProvider)
}

func createGeminiProvider(cfg config.ProviderConfig) (api.Transcriber, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini provider requires an API key")
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}
	return NewTranscriber(context.Background(), cfg.APIKey, cfg.BaseURL, model)
}
