package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/billing"
	"github.com/evomind/evomind-api/internal/domain"
	"github.com/evomind/evomind-api/internal/platform/ocr"
	"github.com/evomind/evomind-api/internal/service/auth"
	"github.com/evomind/evomind-api/internal/store"
	"github.com/go-playground/validator/v10"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors
	switch {
	// Bad request errors
	case errors.As(err, &verrs),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyUserID),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, billing.ErrNegativeUsage),
		errors.Is(err, billing.ErrNonFiniteUsage),
		errors.Is(err, billing.ErrUsageTooLarge),
		errors.Is(err, auth.ErrMissingIdentity),
		errors.Is(err, ocr.ErrEmptyImage):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	if MapErrorToStatusCode(err) == http.StatusBadRequest {
		return SanitizeValidationError(err)
	}

	return "An unexpected error occurred"
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first offending field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	if errors.Is(err, billing.ErrUsageTooLarge) {
		return "Invalid usage: " + billing.ErrUsageTooLarge.Error()
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		return fmt.Sprintf("Invalid %s: %s", verr.Field, verr.Message)
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required", "notblank":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte":
		return "must not be negative"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. A non-empty
// fallbackMessage replaces the generic text for server errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
