package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crimson/internal/delivery/api/validator"
	domainerrors "crimson/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"domain error", errors.Wrap(domainerrors.ErrListingNotFound, "load"), http.StatusNotFound, "LISTING_NOT_FOUND"},
		{"validator", &validator.ValidationError{Fields: map[string]string{"q": "bad"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"echo error", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"anything else", errors.New("pq: connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := classify(tt.err)

			assert.Equal(t, tt.wantStatus, f.status)
			assert.Equal(t, tt.wantCode, f.code)
		})
	}
}

func TestHandleHTTPError(t *testing.T) {
	buf := &bytes.Buffer{}
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(buf, nil)))
	e := echo.New()

	t.Run("server errors are logged and hidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil), rec)

		m.HandleHTTPError(errors.New("secret dsn in message"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret dsn")
		assert.Contains(t, buf.String(), "secret dsn")

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "INTERNAL_ERROR", body["error"].(map[string]any)["code"])
	})

	t.Run("committed responses are left alone", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, c.String(http.StatusOK, "done"))

		m.HandleHTTPError(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})

	t.Run("HEAD gets no body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

		m.HandleHTTPError(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})
}
