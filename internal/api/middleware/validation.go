package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ahitagnied/lotus-app/internal/api/errors"
)

// ValidateForm binds a multipart form into req and validates struct tags.
// Tag failures become a validation error, anything else a bad request.
func ValidateForm(c *gin.Context, req interface{}) error {
	err := c.ShouldBindWith(req, binding.FormMultipart)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return errors.NewBadRequestError("request must be multipart/form-data: " + err.Error())
	}

	validationErrors := make(map[string]string)
	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			validationErrors[field] = "is required"
		case "min":
			validationErrors[field] = "is too short"
		case "max":
			validationErrors[field] = "is too long"
		default:
			validationErrors[field] = "is invalid"
		}
	}

	return errors.NewValidationError("Validation failed", validationErrors)
}

// RequireFile rejects a bound multipart form whose field carries no file
// part. A plain text value under the same name still satisfies binding.
func RequireFile(c *gin.Context, field string) error {
	form := c.Request.MultipartForm
	if form != nil && len(form.File[field]) > 0 {
		return nil
	}
	return errors.NewValidationError("Validation failed", map[string]string{field: "is required"})
}
