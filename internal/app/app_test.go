package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ahitagnied/lotus-app/internal/app/testutil"
	"github.com/ahitagnied/lotus-app/internal/app/transcription"
	"github.com/ahitagnied/lotus-app/internal/config"
)

const testOpenAIKey = "sk-1234567890abcdef1234567890abcdef"

// isolateEnv runs the test from an empty directory with a clean environment
func isolateEnv(t *testing.T) string {
	t.Helper()

	for _, key := range []string{
		"OPENAI_API_KEY", "GEMINI_API_KEY", "TRANSCRIPTION_PROVIDER",
		"OPENAI_MODEL", "OPENAI_BASE_URL", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"PROVIDER_TIMEOUT", "HOST", "PORT", "APP_ENV", "READ_TIMEOUT",
		"WRITE_TIMEOUT", "IDLE_TIMEOUT", "SCRATCH_DIR", "RETAIN_FAILED_UPLOADS",
		"STRICT_STATUS_CODES", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

// fakeWhisper mimics the OpenAI transcription endpoint
func fakeWhisper(t *testing.T, text string) (*httptest.Server, *int32) {
	t.Helper()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer "+testOpenAIKey, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"text":%q}`, text)
	}))
	t.Cleanup(srv.Close)

	return srv, &hits
}

func TestBootstrap(t *testing.T) {
	isolateEnv(t)
	t.Setenv("OPENAI_API_KEY", testOpenAIKey)

	cfg, logger, err := Bootstrap(false, func(cfg *config.Config) {
		cfg.Server.Port = "9090"
	})
	require.NoError(t, err)
	require.NotNil(t, logger)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Provider.Name)
	assert.Equal(t, "whisper-1", cfg.Provider.Model)
}

func TestBootstrap_Errors(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		isolateEnv(t)

		_, _, err := Bootstrap(false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("override fails validation", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv("OPENAI_API_KEY", testOpenAIKey)

		_, _, err := Bootstrap(false, func(cfg *config.Config) {
			cfg.Server.Port = "99999"
		})
		require.Error(t, err)
	})

	t.Run("dotenv file is honoured", func(t *testing.T) {
		dir := isolateEnv(t)
		require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))
		require.NoError(t, os.Unsetenv("TRANSCRIPTION_PROVIDER"))
		require.NoError(t, os.WriteFile(dir+"/.env", []byte("OPENAI_API_KEY="+testOpenAIKey+"\n"), 0o600))

		cfg, _, err := Bootstrap(false)
		require.NoError(t, err)
		assert.Equal(t, testOpenAIKey, cfg.Provider.APIKey)
	})
}

func TestInitializeServer_EndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	isolateEnv(t)
	scratchDir := t.TempDir()

	whisper, hits := fakeWhisper(t, testutil.SampleTranscript)
	t.Setenv("OPENAI_API_KEY", testOpenAIKey)
	t.Setenv("OPENAI_BASE_URL", whisper.URL+"/v1")
	t.Setenv("SCRATCH_DIR", scratchDir)

	cfg, _, err := Bootstrap(false)
	require.NoError(t, err)

	srv, err := InitializeServer(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	body, contentType := testutil.MultipartBody(t, "file", "speech.wav", testutil.WAVBytes())
	req := httptest.NewRequest(http.MethodPost, "/transcribe/", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testutil.SampleTranscript, resp["transcription"])
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	entries, err := os.ReadDir(scratchDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestInitializeService_ProviderFailure(t *testing.T) {
	isolateEnv(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
	}))
	defer upstream.Close()

	t.Setenv("OPENAI_API_KEY", testOpenAIKey)
	t.Setenv("OPENAI_BASE_URL", upstream.URL+"/v1")
	t.Setenv("SCRATCH_DIR", t.TempDir())

	cfg, _, err := Bootstrap(false)
	require.NoError(t, err)

	service, err := InitializeService(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = service.Transcribe(context.Background(), transcription.Upload{
		Filename: "speech.wav",
		Reader:   strings.NewReader(string(testutil.WAVBytes())),
	})
	require.Error(t, err)
	assert.Equal(t, transcription.KindProvider, transcription.KindOf(err))
}

func TestInitializeServer_UnknownProvider(t *testing.T) {
	cfg := &config.Config{
		Provider: config.ProviderConfig{Name: "deepgram"},
		Scratch:  config.ScratchConfig{Dir: t.TempDir()},
	}

	_, err := InitializeServer(cfg, zaptest.NewLogger(t))
	require.Error(t, err)
}
