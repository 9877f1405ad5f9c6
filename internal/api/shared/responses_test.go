package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "successful response",
			status:       http.StatusOK,
			data:         map[string]interface{}{"message": "success", "data": 123},
			expectedBody: `{"message":"success","data":123}`,
		},
		{
			name:         "non ascii text stays readable",
			status:       http.StatusOK,
			data:         map[string]string{"status": "已受理"},
			expectedBody: `{"status":"已受理"}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondOK(t *testing.T) {
	t.Parallel()

	t.Run("uses trace id as request id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = req.WithContext(WithTraceID(req.Context(), "trace-123"))
		w := httptest.NewRecorder()

		RespondOK(w, req, map[string]string{"status": "UP"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"code":0,"message":"ok","requestId":"trace-123","data":{"status":"UP"}}`,
			w.Body.String())
	})

	t.Run("mints request id without trace", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		RespondOK(w, req, []string{})

		var env Envelope[[]string]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, EnvelopeCodeOK, env.Code)
		assert.Equal(t, EnvelopeMessageOK, env.Message)
		_, err := uuid.Parse(env.RequestID)
		assert.NoError(t, err)
		assert.NotNil(t, env.Data)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("string payload", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodDelete, "/test", nil)
		w := httptest.NewRecorder()

		RespondOK(w, req, "删除成功")

		var env Envelope[string]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "删除成功", env.Data)
	})
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(WithTraceID(req.Context(), "trace-err"))
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request format","trace_id":"trace-err"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		opts      []ResponseOption
		wantLevel string
	}{
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "client error", status: http.StatusBadRequest, wantLevel: "DEBUG"},
		{
			name:      "elevated client error",
			status:    http.StatusBadRequest,
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "WARN",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			log, buf := logger.GetTestLogger(t)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sms/login", nil)
			ctx := WithTraceID(req.Context(), "trace-log")
			req = req.WithContext(logger.WithLogger(ctx, log))
			w := httptest.NewRecorder()

			err := errors.New("sms gateway refused 13800008888")
			RespondWithErrorAndLog(w, req, tc.status, "Something went wrong", err, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, `{"error":"Something went wrong","trace_id":"trace-log"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "13800008888", "raw error must not reach the client")

			logger.AssertLogField(t, buf, "level", tc.wantLevel)
			logger.AssertLogField(t, buf, "trace_id", "trace-log")
			assert.True(t, strings.Contains(buf.String(), "[REDACTED_PHONE]"), "logged error should be redacted")
			assert.NotContains(t, buf.String(), "13800008888")
		})
	}
}
