package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"

	"github.com/ahitagnied/lotus-app/internal/app/api/provider"
)

const (
	providerName = "gemini"

	transcribePrompt = "Generate a verbatim transcript of the speech in this audio. " +
		"Respond with the transcript text only, without commentary or timestamps."
)

// Transcriber transcribes audio with a Gemini model by sending the file
// inline alongside a transcription prompt.
type Transcriber struct {
	client *genai.Client
	model  string
}

// NewTranscriber creates a Gemini transcriber. An empty baseURL keeps the
// public Gemini API endpoint.
func NewTranscriber(ctx context.Context, apiKey, baseURL, model string) (*Transcriber, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Transcriber{client: client, model: model}, nil
}

// Model returns the model identifier sent with every request.
func (t *Transcriber) Model() string {
	return t.model
}

// Transcript reads the audio file and asks the model for its transcript.
func (t *Transcriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	data, err := os.ReadFile(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("reading audio file: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromBytes(data, mimetype.Detect(data).String()),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", handleAPIError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", provider.NewTranscriptionError(providerName, provider.CodeInvalidFile,
			fmt.Sprintf("Gemini rejected the audio: %s", resp.PromptFeedback.BlockReason), false, nil)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// handleAPIError converts Gemini API errors to TranscriptionError
func handleAPIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		code, retryable := provider.CodeForStatus(apiErr.Code)
		return provider.NewTranscriptionError(providerName, code, "Gemini API error", retryable, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return provider.NewTranscriptionError(providerName, provider.CodeTimeout,
			"Gemini transcription timed out", true, err)
	}

	return provider.NewTranscriptionError(providerName, provider.CodeUnknown, "Transcription failed", true, err)
}
