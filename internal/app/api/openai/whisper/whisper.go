package whisper

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"

	"github.com/ahitagnied/lotus-app/internal/app/api/provider"
)

const providerName = "openai"

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance. An empty
// model selects whisper-1.
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model}
}

// Model returns the model identifier sent with every request.
func (rt *RemoteTranscriber) Model() string {
	return rt.model
}

// Transcript uses the OpenAI API for remote transcription.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", handleAPIError(err)
	}

	return resp.Text, nil
}

// handleAPIError converts OpenAI API errors to TranscriptionError
func handleAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(reqErr.HTTPStatusCode, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return provider.NewTranscriptionError(providerName, provider.CodeTimeout,
			"OpenAI transcription timed out", true, err)
	}

	return provider.NewTranscriptionError(providerName, provider.CodeUnknown,
		"Transcription failed", true, err)
}

func statusError(status int, err error) *provider.TranscriptionError {
	code, retryable := provider.CodeForStatus(status)

	var message string
	var suggestions []string
	switch code {
	case provider.CodeAuthenticationFailed:
		message = "OpenAI API key is invalid or missing"
		suggestions = []string{"Check your OPENAI_API_KEY environment variable"}
	case provider.CodeRateLimitExceeded:
		message = "OpenAI API rate limit exceeded"
		suggestions = []string{"Wait a moment and try again", "Consider upgrading your OpenAI plan"}
	case provider.CodeFileTooLarge:
		message = "Audio file is too large for OpenAI API"
		suggestions = []string{"Reduce file size", "Split into smaller chunks"}
	case provider.CodeInvalidFile:
		message = "Invalid audio file format or corrupted file"
		suggestions = []string{"Check file format", "Try converting to a supported format"}
	default:
		message = "OpenAI API error"
	}

	transcriptionErr := provider.NewTranscriptionError(providerName, code, message, retryable, err)
	transcriptionErr.Suggestions = suggestions
	return transcriptionErr
}
