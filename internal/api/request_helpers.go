package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/domain"
)

// maxRequestBodyBytes caps JSON bodies. OCR screenshots arrive base64 encoded.
const maxRequestBodyBytes = 10 << 20

// requireQuery returns a non-blank query parameter or a validation error.
func requireQuery(r *http.Request, name string) (string, error) {
	value := r.URL.Query().Get(name)
	if strings.TrimSpace(value) == "" {
		return "", domain.NewValidationError(name, "is required", domain.ErrValidation)
	}
	return value, nil
}

// queryParam is requireQuery that writes the 400 response itself.
// It reports false if the handler should return.
func queryParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value, err := requireQuery(r, name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", false
	}
	return value, true
}

// decodeAndValidate reads the JSON body into v and validates it.
// On failure it writes the 4xx response and reports false. Oversized bodies
// get 413 and a WARN log; anything else that fails to decode gets 400.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if err := shared.DecodeJSON(r, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge,
				"Request body too large", err, shared.WithElevatedLogLevel())
			return false
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}

	return true
}
