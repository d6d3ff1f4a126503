package whisper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ahitagnied/lotus-app/internal/app/api/provider"
	"github.com/ahitagnied/lotus-app/internal/config"
)

// TestRemoteTranscriber_Transcript tests the RemoteTranscriber implementation
func TestRemoteTranscriber_Transcript(t *testing.T) {
	tests := []struct {
		name          string
		inputFile     string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectError   bool
		errorContains string
		errorCode     string
	}{
		{
			name:         "successful transcription",
			inputFile:    "/test/audio.mp3",
			mockResponse: `{"text": "This is a test transcription"}`,
			mockStatus:   http.StatusOK,
			expectedText: "This is a test transcription",
		},
		{
			name:         "successful transcription with special characters",
			inputFile:    "/test/audio.wav",
			mockResponse: `{"text": "Hello, 世界! This is a test with émojis 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello, 世界! This is a test with émojis 🎵",
		},
		{
			name:          "API error - unauthorized",
			inputFile:     "/test/audio.mp3",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
			errorCode:     provider.CodeAuthenticationFailed,
		},
		{
			name:          "API error - rate limit",
			inputFile:     "/test/audio.mp3",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			errorContains: "429",
			errorCode:     provider.CodeRateLimitExceeded,
		},
		{
			name:          "API error - corrupted audio",
			inputFile:     "/test/audio.mp3",
			mockResponse:  `{"error": {"message": "Invalid file format.", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusBadRequest,
			expectError:   true,
			errorContains: "Invalid file format.",
			errorCode:     provider.CodeInvalidFile,
		},
		{
			name:          "API error - server error",
			inputFile:     "/test/audio.mp3",
			mockResponse:  `{"error": {"message": "Internal server error", "type": "server_error"}}`,
			mockStatus:    http.StatusInternalServerError,
			expectError:   true,
			errorContains: "500",
			errorCode:     provider.CodeAPIError,
		},
		{
			name:          "API error - non JSON body",
			inputFile:     "/test/audio.mp3",
			mockResponse:  `<html>bad gateway</html>`,
			mockStatus:    http.StatusBadGateway,
			expectError:   true,
			errorContains: "502",
			errorCode:     provider.CodeAPIError,
		},
		{
			name:          "network error",
			inputFile:     "/test/audio.mp3",
			mockStatus:    0, // closes the connection without a response
			expectError:   true,
			errorContains: "EOF",
			errorCode:     provider.CodeUnknown,
		},
		{
			name:          "invalid JSON response",
			inputFile:     "/test/audio.mp3",
			mockResponse:  `{"text": "incomplete JSON`,
			mockStatus:    http.StatusOK,
			expectError:   true,
			errorContains: "EOF",
		},
		{
			name:         "empty transcription",
			inputFile:    "/test/audio.mp3",
			mockResponse: `{"text": ""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
		{
			name:         "transcription with line breaks",
			inputFile:    "/test/audio.mp3",
			mockResponse: `{"text": "Line 1\nLine 2\nLine 3"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Line 1\nLine 2\nLine 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.mockStatus == 0 {
					hijacker, ok := w.(http.Hijacker)
					if ok {
						conn, _, _ := hijacker.Hijack()
						conn.Close()
						return
					}
				}

				if r.Header.Get("Authorization") == "" {
					t.Error("Missing Authorization header")
				}
				if r.Method != http.MethodPost {
					t.Errorf("Expected POST method, got %s", r.Method)
				}
				if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
					t.Errorf("Unexpected path %s", r.URL.Path)
				}

				contentType := r.Header.Get("Content-Type")
				if !strings.Contains(contentType, "multipart/form-data") {
					t.Errorf("Expected multipart/form-data content type, got %s", contentType)
				}

				if err := r.ParseMultipartForm(32 << 20); err != nil {
					t.Errorf("Failed to parse multipart form: %v", err)
				}

				if model := r.FormValue("model"); model != "whisper-1" {
					t.Errorf("Expected model whisper-1, got %s", model)
				}

				file, header, err := r.FormFile("file")
				if err != nil {
					t.Errorf("Failed to get file from form: %v", err)
				} else {
					defer file.Close()
					if header.Filename != filepath.Base(tt.inputFile) {
						t.Errorf("Expected filename %s, got %s", filepath.Base(tt.inputFile), header.Filename)
					}
				}

				w.WriteHeader(tt.mockStatus)
				if tt.mockResponse != "" {
					w.Write([]byte(tt.mockResponse))
				}
			}))
			defer server.Close()

			rt := newTestTranscriber(server.URL, "")
			tempFile := createTempTestFile(t, tt.inputFile)

			result, err := rt.Transcript(context.Background(), tempFile)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error but got none")
				}
				if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error containing '%s', got '%s'", tt.errorContains, err.Error())
				}
				if tt.errorCode != "" {
					var transcriptionErr *provider.TranscriptionError
					if !errors.As(err, &transcriptionErr) {
						t.Fatalf("Expected TranscriptionError, got %T", err)
					}
					if transcriptionErr.Code != tt.errorCode {
						t.Errorf("Expected code %s, got %s", tt.errorCode, transcriptionErr.Code)
					}
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if result != tt.expectedText {
				t.Errorf("Expected text '%s', got '%s'", tt.expectedText, result)
			}
		})
	}
}

// TestRemoteTranscriber_CustomModel checks the configured model reaches the API
func TestRemoteTranscriber_CustomModel(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotModel = r.FormValue("model")
		w.Write([]byte(`{"text": "ok"}`))
	}))
	defer server.Close()

	rt := newTestTranscriber(server.URL, "gpt-4o-transcribe")
	if rt.Model() != "gpt-4o-transcribe" {
		t.Fatalf("Expected model gpt-4o-transcribe, got %s", rt.Model())
	}

	if _, err := rt.Transcript(context.Background(), createTempTestFile(t, "clip.wav")); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if gotModel != "gpt-4o-transcribe" {
		t.Errorf("Expected model gpt-4o-transcribe, got %s", gotModel)
	}
}

// TestRemoteTranscriber_FileNotFound tests handling of non-existent files
func TestRemoteTranscriber_FileNotFound(t *testing.T) {
	rt := newTestTranscriber("http://127.0.0.1:1", "")

	_, err := rt.Transcript(context.Background(), "/non/existent/file.mp3")
	if err == nil {
		t.Error("Expected error for non-existent file, got none")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

// TestRemoteTranscriber_Timeout tests request timeout handling
func TestRemoteTranscriber_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	rt := newTestTranscriber(server.URL, "")
	tempFile := createTempTestFile(t, "/test/audio.mp3")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := rt.Transcript(ctx, tempFile)
	if err == nil {
		t.Fatal("Expected timeout error, got none")
	}

	var transcriptionErr *provider.TranscriptionError
	if !errors.As(err, &transcriptionErr) || transcriptionErr.Code != provider.CodeTimeout {
		t.Errorf("Expected timeout code, got: %v", err)
	}
}

// TestRemoteTranscriber_ConcurrentRequests tests concurrent transcription requests
func TestRemoteTranscriber_ConcurrentRequests(t *testing.T) {
	var requestCount int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(fmt.Sprintf(`{"text": "Transcription %d"}`, n)))
	}))
	defer server.Close()

	rt := newTestTranscriber(server.URL, "")

	numRequests := 5
	tempFiles := make([]string, numRequests)
	for i := 0; i < numRequests; i++ {
		tempFiles[i] = createTempTestFile(t, fmt.Sprintf("/test/audio%d.mp3", i))
	}

	results := make(chan string, numRequests)
	errs := make(chan error, numRequests)

	for i := 0; i < numRequests; i++ {
		go func(index int) {
			result, err := rt.Transcript(context.Background(), tempFiles[index])
			if err != nil {
				errs <- err
			} else {
				results <- result
			}
		}(i)
	}

	for i := 0; i < numRequests; i++ {
		select {
		case err := <-errs:
			t.Errorf("Unexpected error in concurrent request: %v", err)
		case result := <-results:
			if !strings.Contains(result, "Transcription") {
				t.Errorf("Unexpected result: %s", result)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Timeout waiting for concurrent requests")
		}
	}

	if got := atomic.LoadInt32(&requestCount); got != int32(numRequests) {
		t.Errorf("Expected %d requests, got %d", numRequests, got)
	}
}

// TestCreateOpenAIProvider tests the registered factory
func TestCreateOpenAIProvider(t *testing.T) {
	if _, err := provider.GetProviderCreator(providerName); err != nil {
		t.Fatalf("openai provider should self-register: %v", err)
	}

	_, err := createOpenAIProvider(config.ProviderConfig{Name: providerName})
	if err == nil {
		t.Error("Expected error for missing API key")
	}

	transcriber, err := createOpenAIProvider(config.ProviderConfig{Name: providerName, APIKey: "sk-test-1234567890abcdef"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	rt, ok := transcriber.(*RemoteTranscriber)
	if !ok {
		t.Fatalf("Expected *RemoteTranscriber, got %T", transcriber)
	}
	if rt.Model() != openai.Whisper1 {
		t.Errorf("Expected default model whisper-1, got %s", rt.Model())
	}
}

func newTestTranscriber(serverURL, model string) *RemoteTranscriber {
	clientConfig := openai.DefaultConfig("test-api-key")
	clientConfig.BaseURL = serverURL + "/v1"
	return NewRemoteTranscriber(openai.NewClientWithConfig(clientConfig), model)
}

// Helper function to create temporary test files
func createTempTestFile(t *testing.T, name string) string {
	t.Helper()

	tempFile := filepath.Join(t.TempDir(), filepath.Base(name))

	// Create a minimal valid audio file (WAV header)
	wavHeader := []byte{
		0x52, 0x49, 0x46, 0x46, // "RIFF"
		0x24, 0x00, 0x00, 0x00, // File size
		0x57, 0x41, 0x56, 0x45, // "WAVE"
		0x66, 0x6D, 0x74, 0x20, // "fmt "
		0x10, 0x00, 0x00, 0x00, // Chunk size
		0x01, 0x00, // Audio format (PCM)
		0x01, 0x00, // Channels (mono)
		0x80, 0x3E, 0x00, 0x00, // Sample rate (16000)
		0x00, 0x7D, 0x00, 0x00, // Byte rate
		0x02, 0x00, // Block align
		0x10, 0x00, // Bits per sample
		0x64, 0x61, 0x74, 0x61, // "data"
		0x00, 0x00, 0x00, 0x00, // Data size
	}

	if err := os.WriteFile(tempFile, wavHeader, 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	return tempFile
}

// BenchmarkRemoteTranscriber_Transcript benchmarks the transcription round trip
func BenchmarkRemoteTranscriber_Transcript(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		io.Copy(io.Discard, file)
		w.Write([]byte(`{"text": "Benchmark transcription result"}`))
	}))
	defer server.Close()

	rt := newTestTranscriber(server.URL, "")
	tempFile := filepath.Join(b.TempDir(), "benchmark.wav")
	if err := os.WriteFile(tempFile, []byte("RIFF0000WAVE"), 0644); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rt.Transcript(context.Background(), tempFile); err != nil {
			b.Fatalf("Benchmark failed: %v", err)
		}
	}
}
