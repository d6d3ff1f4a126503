package dto

import "mime/multipart"

// TranscribeForm is the multipart form accepted by POST /transcribe/
type TranscribeForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// TranscriptionResponse is returned when the provider produced a transcript
type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
}

// ErrorResponse is returned for handled failures. It never carries a
// transcription alongside the error.
type ErrorResponse struct {
	Error string `json:"error"`
}
