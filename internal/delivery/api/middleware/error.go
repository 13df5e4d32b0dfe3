package middleware

import (
	"log/slog"
	"net/http"

	"crimson/internal/delivery/api/response"
	"crimson/internal/delivery/api/validator"
	deliverycontext "crimson/internal/delivery/context"
	domainerrors "crimson/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors that handlers return instead of writing a
// response themselves.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

type failure struct {
	status  int
	code    string
	message string
	details any
}

var internalFailure = failure{
	status:  http.StatusInternalServerError,
	code:    "INTERNAL_ERROR",
	message: "Internal server error, please try again later",
}

// classify maps err onto the response envelope. Unknown errors become a
// generic 500 so internals never reach the client.
func classify(err error) failure {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return failure{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
			details: response.AppErrorDetails(appErr),
		}
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return failure{
			status:  http.StatusBadRequest,
			code:    "VALIDATION_ERROR",
			message: "Request validation failed",
			details: validationErr.Fields,
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}

		return failure{status: httpErr.Code, code: "HTTP_ERROR", message: message}
	}

	return internalFailure
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f := classify(err)
	if f.status >= http.StatusInternalServerError {
		req := c.Request()
		deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("code", f.code),
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(f.status)

		return
	}

	_ = response.Error(c, f.status, f.code, f.message, f.details)
}
