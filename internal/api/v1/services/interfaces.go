package services

import (
	"context"

	"github.com/ahitagnied/lotus-app/internal/app/transcription"
)

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	Transcribe(ctx context.Context, upload transcription.Upload) (string, error)
}

var _ TranscriptionService = (*transcription.Service)(nil)
