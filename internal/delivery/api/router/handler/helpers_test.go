package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"crimson/config"
	apimiddleware "crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/validator"
	"crimson/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Checkout.Currency = "Rs"

	return cfg
}

// newTestContext builds an echo context with the validator and error handler
// of the API server.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(testLogger).HandleHTTPError

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func asUser(c echo.Context, userID uuid.UUID) {
	apimiddleware.SetUser(c, userID, entity.Roles{entity.RoleUser})
}

func asAdmin(c echo.Context, userID uuid.UUID) {
	apimiddleware.SetUser(c, userID, entity.Roles{entity.RoleUser, entity.RoleAdmin})
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))

	return data
}
