package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Config is the complete runtime configuration of the service.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Scratch  ScratchConfig

	// StrictStatusCodes reports handled failures with real HTTP status codes
	// instead of 200 with an error field.
	StrictStatusCodes bool
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host         string
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
}

// Address returns host:port for the listener.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// IsProduction reports whether APP_ENV is production.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// ProviderConfig selects and configures the transcription provider.
type ProviderConfig struct {
	Name    string
	APIKey  string
	Model   string
	BaseURL string

	// Timeout bounds a single provider call. Zero leaves the client default.
	Timeout time.Duration
}

// ScratchConfig controls where uploads are staged.
type ScratchConfig struct {
	// Dir is the root under which per-request directories are created.
	Dir string

	// RetainFailed keeps the staged upload when the provider rejects it.
	RetainFailed bool
}

// Load reads the configuration from the environment. Call LoadEnv first to
// pick up a .env file.
func Load() (*Config, error) {
	var err error
	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnvOrDefault("HOST", DefaultHost),
			Port:        getEnvOrDefault("PORT", DefaultPort),
			Environment: getEnvOrDefault("APP_ENV", DefaultEnvironment),
			CORSOrigins: parseList(os.Getenv("CORS_ALLOW_ORIGINS"), DefaultCORSOrigins),
		},
		Scratch: ScratchConfig{
			Dir: getEnvOrDefault("SCRATCH_DIR", os.TempDir()),
		},
	}

	if cfg.Server.ReadTimeout, err = getDuration("READ_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = getDuration("WRITE_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.Server.IdleTimeout, err = getDuration("IDLE_TIMEOUT", DefaultIdleTimeout); err != nil {
		return nil, err
	}
	if cfg.Scratch.RetainFailed, err = getBool("RETAIN_FAILED_UPLOADS", false); err != nil {
		return nil, err
	}
	if cfg.StrictStatusCodes, err = getBool("STRICT_STATUS_CODES", false); err != nil {
		return nil, err
	}

	cfg.Provider, err = loadProvider(GetAPIKeys())
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadProvider(apiKeys *APIKeys) (ProviderConfig, error) {
	name := strings.ToLower(getEnvOrDefault("TRANSCRIPTION_PROVIDER", DefaultProvider))

	pc := ProviderConfig{Name: name}
	switch name {
	case "openai":
		pc.Model = getEnvOrDefault("OPENAI_MODEL", DefaultOpenAIModel)
		pc.BaseURL = os.Getenv("OPENAI_BASE_URL")
	case "gemini":
		pc.Model = getEnvOrDefault("GEMINI_MODEL", DefaultGeminiModel)
		pc.BaseURL = os.Getenv("GEMINI_BASE_URL")
	default:
		return pc, fmt.Errorf("unsupported TRANSCRIPTION_PROVIDER %q (supported: openai, gemini)", name)
	}

	key, err := apiKeys.RequireAPIKey(name, pc.BaseURL)
	if err != nil {
		return pc, err
	}
	pc.APIKey = key

	timeout, err := getDuration("PROVIDER_TIMEOUT", 0)
	if err != nil {
		return pc, err
	}
	pc.Timeout = timeout

	return pc, nil
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	if c.Provider.Timeout != 0 {
		if err := ValidateTimeout(c.Provider.Timeout, "provider"); err != nil {
			return err
		}
	}
	if c.Provider.BaseURL != "" {
		if err := ValidateURL(c.Provider.BaseURL, c.Provider.Name+" base"); err != nil {
			return err
		}
	}
	if c.Scratch.Dir == "" {
		return fmt.Errorf("scratch directory is required")
	}
	return nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return b, nil
}

// parseList splits a comma separated value, dropping blanks.
func parseList(raw string, defaultValue []string) []string {
	items := lo.FilterMap(strings.Split(raw, ","), func(item string, _ int) (string, bool) {
		item = strings.TrimSpace(item)
		return item, item != ""
	})
	if len(items) == 0 {
		return defaultValue
	}
	return lo.Uniq(items)
}
