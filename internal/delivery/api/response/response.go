// Package response renders the JSON envelope every API endpoint answers with:
//
//	{"data": ..., "meta": {"request_id": "..."}}
//	{"error": {"code": "...", "message": "...", "details": ...}, "meta": {...}}
package response

import (
	"net/http"

	"crimson/internal/delivery/api/validator"
	deliverycontext "crimson/internal/delivery/context"
	domainerrors "crimson/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type Meta struct {
	RequestID string `json:"request_id"`
}

type Body struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Body{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. Details are dropped for server errors and
// for 401/403 so they cannot leak internals or account state.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !detailsAllowed(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, Body{
		Error: &ErrorBody{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func detailsAllowed(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError answers a body or query that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return BadRequest(c, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// ValidationFailed returns a 400 listing the offending fields when err came
// from the request validator.
func ValidationFailed(c echo.Context, err error) error {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", validationErr.Fields)
	}

	return BadRequest(c, "VALIDATION_ERROR", err.Error())
}

// AppErrorDetails returns the details of appErr, or nil when it has none.
func AppErrorDetails(appErr domainerrors.AppError) any {
	if appErr.Details() == "" {
		return nil
	}

	return appErr.Details()
}

// HandleAppError renders domain errors. Anything else is returned with a
// stack so the central error handler logs it and answers 500.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), AppErrorDetails(appErr))
	}

	return errors.WithStack(err)
}
