package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"crimson/config"
	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/constants"
	"crimson/internal/domain/service"
	"crimson/internal/infra/pubsub"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError marks a failure the transport should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps err so transports redeliver the event.
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether err should trigger a redelivery.
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// ErrInvalidEvent is returned for events that can never be processed.
var ErrInvalidEvent = errors.New("invalid moderation event")

// pushVerifier authenticates a Pub/Sub push request.
type pushVerifier func(req *http.Request) error

// PushHandler turns delivered moderation events into seller notifications.
type PushHandler struct {
	verifyPushAuth bool
	verify         pushVerifier
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests with an OIDC token; local and dev setups do not
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush serves the Pub/Sub push subscription.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	return h.handle(c)
}

// HandleLocalEvent serves the local publisher used in development. The body
// has the push shape, without the OIDC token.
func (h *PushHandler) HandleLocalEvent(c echo.Context) error {
	return h.handle(c)
}

func (h *PushHandler) handle(c echo.Context) error {
	ctx := c.Request().Context()

	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ModerationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse moderation event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Attributes win over the payload, which wins over the inbound header
	requestID := ResolveRequestID(ctx, pushMsg.Message.Attributes[pubsub.AttrRequestID], &event)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, h.logger.With(slog.String("request_id", requestID)))

	if err := h.Process(ctx, &event); err != nil {
		// 503 asks Pub/Sub to redeliver; 200 drops events that will never succeed
		if IsRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// Process notifies the seller of event. It is shared by every transport.
func (h *PushHandler) Process(ctx context.Context, event *service.ModerationEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if event.ListingID == uuid.Nil || event.SellerID == uuid.Nil || event.Action == "" {
		logger.Error("[Worker] Dropping incomplete moderation event",
			slog.String("listing_id", event.ListingID.String()),
			slog.String("action", string(event.Action)),
		)

		return ErrInvalidEvent
	}

	logger.Info("[Worker] Processing moderation event",
		slog.String("listing_id", event.ListingID.String()),
		slog.String("action", string(event.Action)),
	)

	result, err := h.notificationUC.NotifyModeration(ctx, event)
	if err != nil {
		logger.Error("[Worker] Failed to notify seller",
			slog.String("listing_id", event.ListingID.String()),
			slog.Any("error", err),
		)

		return NewRetryableError(err)
	}

	logger.Info("[Worker] Moderation event processed",
		slog.String("listing_id", event.ListingID.String()),
		slog.Int("sent", result.TotalSent),
		slog.Int("failed", result.TotalFailed),
	)

	return nil
}

// ResolveRequestID picks the id used to correlate logs with the API request
// that caused the event, minting one when none is known.
func ResolveRequestID(ctx context.Context, attribute string, event *service.ModerationEvent) string {
	if attribute != "" {
		return attribute
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken validates the OIDC token Google attaches to push
// requests. The audience is the URL of the push endpoint.
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
