package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahitagnied/lotus-app/internal/api/errors"
	"github.com/ahitagnied/lotus-app/internal/api/middleware"
	"github.com/ahitagnied/lotus-app/internal/api/v1/dto"
	"github.com/ahitagnied/lotus-app/internal/api/v1/services"
	"github.com/ahitagnied/lotus-app/internal/app/transcription"
)

// TranscriptionHandler handles the upload endpoint
type TranscriptionHandler struct {
	service           services.TranscriptionService
	strictStatusCodes bool
}

// NewTranscriptionHandler creates a new transcription handler. With
// strictStatusCodes unset, handled failures answer 200 with an error body.
func NewTranscriptionHandler(service services.TranscriptionService, strictStatusCodes bool) *TranscriptionHandler {
	return &TranscriptionHandler{
		service:           service,
		strictStatusCodes: strictStatusCodes,
	}
}

// Transcribe handles POST /transcribe/
// @Summary Transcribe an audio upload
// @Description Accepts a multipart upload in the "file" field and returns its transcript.
// @Description Handled failures answer 200 with an error body unless strict status codes are enabled.
// @Tags Transcription
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Success 200 {object} dto.TranscriptionResponse
// @Failure 400 {object} errors.APIError
// @Failure 422 {object} errors.APIError
// @Failure 500 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /transcribe/ [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	var form dto.TranscribeForm

	if err := middleware.ValidateForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := middleware.RequireFile(c, "file"); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, err := form.File.Open()
	if err != nil {
		h.respondError(c, &transcription.Error{
			Kind: transcription.KindStorage,
			Err:  fmt.Errorf("failed to read upload %s: %w", form.File.Filename, err),
		})
		return
	}
	defer file.Close()

	text, err := h.service.Transcribe(c.Request.Context(), transcription.Upload{
		Filename: form.File.Filename,
		Reader:   file,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TranscriptionResponse{Transcription: text})
}

func (h *TranscriptionHandler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := http.StatusOK
	if h.strictStatusCodes {
		status = errors.StatusFor(apiErrorKind(transcription.KindOf(err)))
	}

	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func apiErrorKind(kind transcription.Kind) errors.ErrorKind {
	switch kind {
	case transcription.KindInput:
		return errors.KindBadRequest
	case transcription.KindStorage:
		return errors.KindStorage
	default:
		return errors.KindProvider
	}
}
