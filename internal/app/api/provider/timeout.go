package provider

import (
	"context"
	"time"

	"github.com/ahitagnied/lotus-app/internal/app/api"
)

type timeoutTranscriber struct {
	next    api.Transcriber
	timeout time.Duration
}

// WithTimeout bounds each Transcript call of next by timeout.
func WithTimeout(next api.Transcriber, timeout time.Duration) api.Transcriber {
	return &timeoutTranscriber{next: next, timeout: timeout}
}

func (t *timeoutTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Transcript(ctx, inputFilePath)
}
