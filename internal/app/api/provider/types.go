package provider

import "fmt"

// Error codes reported by providers
const (
	CodeAuthenticationFailed = "authentication_failed"
	CodeRateLimitExceeded    = "rate_limit_exceeded"
	CodeFileTooLarge         = "file_too_large"
	CodeInvalidFile          = "invalid_file"
	CodeTimeout              = "timeout"
	CodeAPIError             = "api_error"
	CodeUnknown              = "unknown_error"
)

// TranscriptionError represents provider-specific errors
type TranscriptionError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Provider    string   `json:"provider"`
	Retryable   bool     `json:"retryable"`
	Suggestions []string `json:"suggestions,omitempty"`

	cause error
}

// NewTranscriptionError builds a TranscriptionError wrapping cause.
func NewTranscriptionError(providerName, code, message string, retryable bool, cause error) *TranscriptionError {
	return &TranscriptionError{
		Code:      code,
		Message:   message,
		Provider:  providerName,
		Retryable: retryable,
		cause:     cause,
	}
}

func (e *TranscriptionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *TranscriptionError) Unwrap() error {
	return e.cause
}

// CodeForStatus maps an upstream HTTP status to an error code and whether
// the failure is worth retrying by the caller.
func CodeForStatus(status int) (string, bool) {
	switch status {
	case 401, 403:
		return CodeAuthenticationFailed, false
	case 429:
		return CodeRateLimitExceeded, true
	case 413:
		return CodeFileTooLarge, false
	case 400, 415, 422:
		return CodeInvalidFile, false
	default:
		return CodeAPIError, true
	}
}
