package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"crimson/config"
	"crimson/internal/delivery"
	apimiddleware "crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/router"
	"crimson/internal/delivery/api/validator"
	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/delivery/middleware"
	"crimson/internal/domain/constants"
	"crimson/internal/domain/lifecycle"
	"crimson/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// exposedHeaders are readable by browser clients on cross-origin responses.
var exposedHeaders = []string{
	constants.HeaderCartSession,
	constants.HeaderOrderID,
	deliverycontext.HeaderXRequestID,
}

type apiServer struct {
	addr        string
	idleTimeout time.Duration
	logger      *slog.Logger
	server      *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the marketplace API server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)
	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &apiServer{
		addr:        net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		server:      e,
	}
	params.Lc.Append(fx.Hook{OnStop: srv.stop})

	return srv, nil
}

// newEcho returns an echo instance with the shared middleware chain and no
// routes. Order matters: panics are recovered before anything else runs and
// the request id exists before the access log is written.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:  []string{"*"},
			ExposeHeaders: exposedHeaders,
		}),
		// uploads get their own limit on the route
		echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
			Skipper: router.IsUpload,
			Limit:   cfg.HTTP.MaxRequestBodySize,
		}),
	)

	return e
}

func (s *apiServer) Serve(context.Context) error {
	s.logger.Info("Starting API HTTP server", slog.String("host_port", s.addr))

	err := s.server.StartH2CServer(s.addr, &http2.Server{IdleTimeout: s.idleTimeout})
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *apiServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(ctx))
}
