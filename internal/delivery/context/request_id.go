// Package context carries request-scoped values from the delivery layer into
// usecases: the correlation id and a logger already tagged with it.
package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

// echoRequestIDKey stores the id on echo.Context for handlers.
const echoRequestIDKey = "request_id"

type requestIDKey struct{}

// GetRequestID returns the id set by the request ID middleware. It falls back
// to the request context, then to the inbound header.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return c.Request().Header.Get(HeaderXRequestID)
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}
