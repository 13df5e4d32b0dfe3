package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crimson/config"
	deliverycontext "crimson/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(debug bool) (*echo.Echo, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound)
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("boom")
	})

	return e, buf
}

func serve(e *echo.Echo, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func accessLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func TestRequestIDMiddleware(t *testing.T) {
	e, _ := newTestEcho(false)

	t.Run("keeps a well formed id", func(t *testing.T) {
		rec := serve(e, "/ok", http.Header{deliverycontext.HeaderXRequestID: {"req-42"}})

		assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "req-42", rec.Body.String())
	})

	t.Run("replaces a malformed id", func(t *testing.T) {
		rec := serve(e, "/ok", http.Header{deliverycontext.HeaderXRequestID: {"has space"}})

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, "has space", got)
		assert.Len(t, got, 36)
		assert.Equal(t, got, rec.Body.String())
	})

	t.Run("mints one when absent", func(t *testing.T) {
		rec := serve(e, "/ok", nil)

		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("abc-123"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
	assert.False(t, validRequestID("tab\tinside"))
	assert.False(t, validRequestID("ünicode"))
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet for successful requests outside debug", func(t *testing.T) {
		e, buf := newTestEcho(false)

		serve(e, "/ok", nil)

		assert.Empty(t, accessLines(t, buf))
	})

	t.Run("debug logs everything with the request id", func(t *testing.T) {
		e, buf := newTestEcho(true)

		serve(e, "/ok?page=2", http.Header{deliverycontext.HeaderXRequestID: {"req-7"}})

		lines := accessLines(t, buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "INFO", lines[0]["level"])
		assert.Equal(t, "req-7", lines[0]["request_id"])
		assert.Equal(t, "/ok", lines[0]["route"])
		assert.Equal(t, "page=2", lines[0]["query"])
	})

	t.Run("errors are always logged", func(t *testing.T) {
		e, buf := newTestEcho(false)

		serve(e, "/missing", nil)
		serve(e, "/boom", nil)

		lines := accessLines(t, buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "WARN", lines[0]["level"])
		assert.EqualValues(t, http.StatusNotFound, lines[0]["status"])
		assert.Equal(t, "ERROR", lines[1]["level"])
		assert.Equal(t, "boom", lines[1]["error"])
	})
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, accessLogLevel(http.StatusOK, nil))
	assert.Equal(t, slog.LevelWarn, accessLogLevel(http.StatusConflict, nil))
	assert.Equal(t, slog.LevelError, accessLogLevel(http.StatusBadGateway, nil))
	assert.Equal(t, slog.LevelWarn, accessLogLevel(http.StatusNotFound, echo.ErrNotFound))
	assert.Equal(t, slog.LevelError, accessLogLevel(http.StatusOK, errors.New("x")))
}
