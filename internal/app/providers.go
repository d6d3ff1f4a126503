package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ahitagnied/lotus-app/internal/api/server"
	"github.com/ahitagnied/lotus-app/internal/api/v1/services"
	"github.com/ahitagnied/lotus-app/internal/app/api"
	"github.com/ahitagnied/lotus-app/internal/app/api/provider"
	"github.com/ahitagnied/lotus-app/internal/app/metrics"
	"github.com/ahitagnied/lotus-app/internal/app/scratch"
	"github.com/ahitagnied/lotus-app/internal/app/transcription"
	"github.com/ahitagnied/lotus-app/internal/config"

	// Providers register themselves with the provider registry
	_ "github.com/ahitagnied/lotus-app/internal/app/api/gemini"
	_ "github.com/ahitagnied/lotus-app/internal/app/api/openai/whisper"
)

// provideTranscriber builds the provider selected by TRANSCRIPTION_PROVIDER
func provideTranscriber(cfg *config.Config) (api.Transcriber, error) {
	return provider.CreateProvider(cfg.Provider)
}

func provideStore(cfg *config.Config) (*scratch.Store, error) {
	return scratch.NewStore(cfg.Scratch.Dir)
}

func provideServiceOptions(cfg *config.Config) transcription.Options {
	return transcription.Options{RetainFailed: cfg.Scratch.RetainFailed}
}

// provideRegistry returns a registry carrying the runtime collectors
func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

var serviceSet = wire.NewSet(
	provideTranscriber,
	provideStore,
	provideServiceOptions,
	provideRegistry,
	metrics.NewMetrics,
	transcription.NewService,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
)

var serverSet = wire.NewSet(
	serviceSet,
	server.NewServer,
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	wire.Bind(new(services.TranscriptionService), new(*transcription.Service)),
)
