// Package transcription runs a single upload through scratch storage and the
// configured provider.
package transcription

import (
	"context"
	"errors"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ahitagnied/lotus-app/internal/app/api"
	"github.com/ahitagnied/lotus-app/internal/app/api/provider"
	"github.com/ahitagnied/lotus-app/internal/app/metrics"
	"github.com/ahitagnied/lotus-app/internal/app/scratch"
)

// Upload is an incoming audio file
type Upload struct {
	Filename string
	Reader   io.Reader
}

// Options tune Service behaviour
type Options struct {
	// RetainFailed keeps the artifact on disk when the provider fails.
	RetainFailed bool
}

// Service turns uploads into transcripts
type Service struct {
	store       *scratch.Store
	transcriber api.Transcriber
	metrics     *metrics.Metrics
	logger      *zap.Logger
	opts        Options
}

// NewService creates a new transcription service
func NewService(
	store *scratch.Store,
	transcriber api.Transcriber,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts Options,
) *Service {
	return &Service{
		store:       store,
		transcriber: transcriber,
		metrics:     m,
		logger:      logger,
		opts:        opts,
	}
}

// Transcribe stages the upload, sends it to the provider and returns the text.
// Errors are always *Error.
func (s *Service) Transcribe(ctx context.Context, upload Upload) (string, error) {
	if upload.Reader == nil {
		s.metrics.RecordTranscription(metrics.OutcomeInputError)
		return "", newError(KindInput, "no audio file provided")
	}

	artifact, err := s.store.Acquire(upload.Filename, upload.Reader)
	if err != nil {
		s.metrics.RecordTranscription(metrics.OutcomeStorageError)
		s.logger.Error("Failed to stage upload",
			zap.String("filename", upload.Filename),
			zap.Error(err),
		)
		return "", &Error{Kind: KindStorage, Err: err}
	}
	s.metrics.ObserveUpload(artifact.Size)

	retain := false
	defer func() {
		if retain {
			return
		}
		if err := artifact.Release(); err != nil {
			s.logger.Warn("Failed to release upload", zap.String("path", artifact.Path), zap.Error(err))
		}
	}()

	s.logger.Debug("Upload staged",
		zap.String("filename", artifact.Name),
		zap.String("path", artifact.Path),
		zap.Int64("size", artifact.Size),
		zap.String("sha256", artifact.SHA256),
	)

	start := time.Now()
	text, err := s.transcriber.Transcript(ctx, artifact.Path)
	elapsed := time.Since(start)
	s.metrics.ObserveProviderCall(elapsed.Seconds())

	if err != nil {
		s.metrics.RecordTranscription(metrics.OutcomeProviderError)
		fields := []zap.Field{
			zap.String("filename", artifact.Name),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		}
		var providerErr *provider.TranscriptionError
		if errors.As(err, &providerErr) {
			fields = append(fields,
				zap.String("code", providerErr.Code),
				zap.Bool("retryable", providerErr.Retryable),
				zap.Strings("suggestions", providerErr.Suggestions),
			)
		}
		if s.opts.RetainFailed {
			retain = true
			s.metrics.RecordRetainedUpload()
			fields = append(fields,
				zap.String("retained_path", artifact.Path),
				zap.String("sha256", artifact.SHA256),
			)
		}
		s.logger.Error("Transcription failed", fields...)
		return "", &Error{Kind: KindProvider, Err: err}
	}

	s.metrics.RecordTranscription(metrics.OutcomeSuccess)
	s.logger.Info("Transcription completed",
		zap.String("filename", artifact.Name),
		zap.Int64("size", artifact.Size),
		zap.Duration("elapsed", elapsed),
		zap.Int("chars", len(text)),
	)
	return text, nil
}
