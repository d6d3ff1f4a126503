//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/ahitagnied/lotus-app/internal/api/server"
	"github.com/ahitagnied/lotus-app/internal/app/transcription"
	"github.com/ahitagnied/lotus-app/internal/config"
)

// InitializeServer wires the HTTP server and everything behind it
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(serverSet)
	return &server.Server{}, nil
}

// InitializeService wires a standalone transcription service for the CLI
func InitializeService(cfg *config.Config, logger *zap.Logger) (*transcription.Service, error) {
	wire.Build(serviceSet)
	return &transcription.Service{}, nil
}
