package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/ahitagnied/lotus-app/internal/app/api"
	"github.com/ahitagnied/lotus-app/internal/config"
)

// ProviderCreator builds a transcriber from provider configuration
type ProviderCreator func(cfg config.ProviderConfig) (api.Transcriber, error)

var (
	registryMutex    sync.RWMutex
	providerRegistry = make(map[string]ProviderCreator)
)

// RegisterProvider registers a provider creator function
func RegisterProvider(providerType string, creator ProviderCreator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	providerRegistry[providerType] = creator
}

// GetProviderCreator returns the creator function for a provider type
func GetProviderCreator(providerType string) (ProviderCreator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("provider type %s not registered", providerType)
	}
	return creator, nil
}

// ListRegisteredProviders returns all registered provider types, sorted
func ListRegisteredProviders() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	providers := lo.Keys(providerRegistry)
	sort.Strings(providers)
	return providers
}

// CreateProvider builds the configured transcriber. A positive cfg.Timeout
// bounds every call.
func CreateProvider(cfg config.ProviderConfig) (api.Transcriber, error) {
	creator, err := GetProviderCreator(cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("%s provider not registered: %w", cfg.Name, err)
	}

	transcriber, err := creator(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", cfg.Name, err)
	}

	if cfg.Timeout > 0 {
		transcriber = WithTimeout(transcriber, cfg.Timeout)
	}
	return transcriber, nil
}
