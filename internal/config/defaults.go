package config

import "time"

// Default configuration constants
const (
	// Server defaults
	DefaultHost        = "0.0.0.0"
	DefaultPort        = "8000"
	DefaultEnvironment = "development"
	DefaultIdleTimeout = 120 * time.Second

	// Provider defaults
	DefaultProvider    = "openai"
	DefaultOpenAIModel = "whisper-1"
	DefaultGeminiModel = "gemini-2.0-flash"

	// MaxProviderTimeout caps PROVIDER_TIMEOUT; zero means no override.
	MaxProviderTimeout = 30 * time.Minute
)

// DefaultCORSOrigins allows every origin.
var DefaultCORSOrigins = []string{"*"}
