package middleware

import (
	"log/slog"
	"net/http"

	"crimson/config"
	deliverycontext "crimson/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

// LoggerMiddleware writes one access log line per request. Outside debug mode
// only failed requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	mw     echo.MiddlewareFunc
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	m := &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
	m.mw = echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:     true,
		LogURIPath:    true,
		LogRoutePath:  true,
		LogStatus:     true,
		LogLatency:    true,
		LogRemoteIP:   true,
		LogUserAgent:  true,
		LogError:      true,
		LogValuesFunc: m.log,
	})

	return m
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.mw(next)
}

func (m *LoggerMiddleware) log(c echo.Context, v echomiddleware.RequestLoggerValues) error {
	level := accessLogLevel(v.Status, v.Error)
	if !m.debug && level < slog.LevelError && v.Error == nil {
		return nil
	}

	attrs := []slog.Attr{
		slog.String("method", v.Method),
		slog.String("uri", v.URIPath),
		slog.String("route", v.RoutePath),
		slog.Int("status", v.Status),
		slog.Duration("latency", v.Latency),
		slog.String("remote_ip", v.RemoteIP),
		slog.String("user_agent", v.UserAgent),
	}
	if q := c.Request().URL.RawQuery; q != "" {
		attrs = append(attrs, slog.String("query", q))
	}
	if v.Error != nil {
		attrs = append(attrs, slog.Any("error", v.Error))
	}

	// The request-scoped logger already carries request_id.
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP Request", attrs...)

	return nil
}

// accessLogLevel maps the response onto a level. An error that is not an
// *echo.HTTPError has not been rendered yet and ends up as a 500.
func accessLogLevel(status int, err error) slog.Level {
	var httpErr *echo.HTTPError
	if err != nil && !errors.As(err, &httpErr) {
		return slog.LevelError
	}

	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
