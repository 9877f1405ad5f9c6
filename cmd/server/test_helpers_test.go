package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evomind/evomind-api/internal/api/shared"
	"github.com/evomind/evomind-api/internal/config"
	"github.com/evomind/evomind-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration for in-process servers.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:              config.DefaultPort,
			LogLevel:          "debug",
			LogFormat:         "json",
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   2 * time.Second,
		},
	}
}

// newTestApp builds a fully wired application logging into the test buffer.
func newTestApp(t *testing.T) *application {
	t.Helper()
	app, err := newApplication(testConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)
	return app
}

// newTestServer starts an httptest server around the application router.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newTestApp(t).setupRouter())
	t.Cleanup(srv.Close)
	return srv
}

// postJSON sends body as JSON to the API path.
func postJSON(t *testing.T, srv *httptest.Server, path string, body interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+APIPrefix+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// get issues a GET against the API path.
func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + APIPrefix + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// readEnvelope requires a 200 response and decodes its envelope.
func readEnvelope[T any](t *testing.T, resp *http.Response) shared.Envelope[T] {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "unexpected status, body: %s", body)

	var env shared.Envelope[T]
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}
