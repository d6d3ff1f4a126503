package testutil

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Sample transcripts returned by fakes in tests
const (
	SampleTranscript        = "And so, my fellow Americans, ask not what your country can do for you."
	SampleChineseTranscript = "这是一个中文语音转文字的测试文件。"
)

// WAVBytes returns a minimal valid 16kHz mono PCM WAV with 2048 bytes of silence
func WAVBytes() []byte {
	wavHeader := []byte{
		0x52, 0x49, 0x46, 0x46, // "RIFF"
		0x24, 0x08, 0x00, 0x00, // File size (2084 bytes)
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
		0x00, 0x08, 0x00, 0x00, // Data size (2048 bytes)
	}

	return append(wavHeader, make([]byte, 2048)...)
}

// CreateTestAudioFile writes a WAV fixture named filename into a test temp dir
func CreateTestAudioFile(t *testing.T, filename string) string {
	t.Helper()

	fullPath := filepath.Join(t.TempDir(), filepath.Base(filename))
	require.NoError(t, os.WriteFile(fullPath, WAVBytes(), 0o644), "failed to create test audio file")

	return fullPath
}

// MultipartBody builds a multipart/form-data body with one file part.
// An empty field name produces a form without any file part.
func MultipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	} else {
		require.NoError(t, writer.WriteField("note", "no file attached"))
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// MultipartTextBody builds a multipart/form-data body whose field is a plain
// text value rather than a file part.
func MultipartTextBody(t *testing.T, field, value string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField(field, value))
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
