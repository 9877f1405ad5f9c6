package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/stretchr/testify/require"
)

// doJSON serves a request with an optional JSON body. A string body is sent
// verbatim so tests can submit malformed JSON.
func doJSON(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// decodeEnvelope asserts a 200 success envelope and returns its payload.
func decodeEnvelope[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	require.Equal(t, http.StatusOK, rr.Code, "unexpected status, body: %s", rr.Body.String())

	var env shared.Envelope[T]
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env), "Failed to decode envelope")
	require.Equal(t, shared.EnvelopeCodeOK, env.Code)
	require.Equal(t, shared.EnvelopeMessageOK, env.Message)
	require.NotEmpty(t, env.RequestID, "envelope should carry a request ID")
	return env.Data
}

// decodeError asserts the status and returns the error body.
func decodeError(t *testing.T, rr *httptest.ResponseRecorder, status int) shared.ErrorResponse {
	t.Helper()

	require.Equal(t, status, rr.Code, "unexpected status, body: %s", rr.Body.String())

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(strings.NewReader(rr.Body.String())).Decode(&resp))
	return resp
}
