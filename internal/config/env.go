package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// envFiles are searched in order; the first one present is loaded.
var envFiles = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
}

// LoadEnv loads environment variables from the first .env file found.
// A missing file is not an error: variables may be set system-wide.
// It returns the path that was loaded, or "" if none was found.
func LoadEnv() (string, error) {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return "", fmt.Errorf("error loading %s file: %w", envPath, err)
		}
		return envPath, nil
	}
	return "", nil
}

// GetAPIKeys reads API keys from environment variables. Keys are not
// checked here; RequireAPIKey validates the one the selected provider uses.
func GetAPIKeys() *APIKeys {
	return &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}
}

// RequireAPIKey returns the credential for the named provider, failing fast
// when it is not configured. Keys for a custom baseURL are opaque and skip
// the vendor format check.
func (k *APIKeys) RequireAPIKey(provider, baseURL string) (string, error) {
	var key, envName, keyType string
	switch provider {
	case "openai":
		key, envName, keyType = k.OpenAI, "OPENAI_API_KEY", "OpenAI"
	case "gemini":
		key, envName, keyType = k.Gemini, "GEMINI_API_KEY", "Gemini"
	default:
		return "", fmt.Errorf("unknown provider: %s", provider)
	}

	if key == "" {
		return "", fmt.Errorf("provider %q requires %s - set it in the environment or .env file", provider, envName)
	}
	if baseURL == "" {
		if err := ValidateAPIKey(key, keyType); err != nil {
			return "", fmt.Errorf("invalid %s: %w", envName, err)
		}
	}
	return key, nil
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
