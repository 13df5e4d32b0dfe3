package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crimson/internal/delivery/api/validator"
	deliverycontext "crimson/internal/delivery/context"
	domainerrors "crimson/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"count": 2}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, map[string]any{"count": float64(2)}, body["data"])
	assert.Equal(t, map[string]any{"request_id": "req-1"}, body["meta"])
	assert.NotContains(t, body, "error")
}

func TestError_DetailsPolicy(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusConflict, true},
		{http.StatusUnauthorized, false},
		{http.StatusForbidden, false},
		{http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "extra"))

			errBody := decode(t, rec)["error"].(map[string]any)
			assert.Equal(t, "CODE", errBody["code"])
			if tt.wantDetails {
				assert.Equal(t, "extra", errBody["details"])
			} else {
				assert.NotContains(t, errBody, "details")
			}
		})
	}
}

func TestValidationFailed(t *testing.T) {
	c, rec := newContext()

	err := &validator.ValidationError{Fields: map[string]string{"title": "is required"}}
	require.NoError(t, ValidationFailed(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decode(t, rec)["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errBody["code"])
	assert.Equal(t, map[string]any{"title": "is required"}, errBody["details"])
}

func TestHandleAppError(t *testing.T) {
	t.Run("domain error", func(t *testing.T) {
		c, rec := newContext()

		err := errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("price must be positive"), "create listing")
		require.NoError(t, HandleAppError(c, err))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		errBody := decode(t, rec)["error"].(map[string]any)
		assert.Equal(t, "price must be positive", errBody["details"])
	})

	t.Run("unknown error is passed on", func(t *testing.T) {
		c, rec := newContext()
		cause := errors.New("disk full")

		err := HandleAppError(c, cause)

		assert.ErrorIs(t, err, cause)
		assert.Zero(t, rec.Body.Len())
	})
}
