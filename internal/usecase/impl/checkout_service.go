package impl

import (
	"context"
	"crypto/rand"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"crimson/config"
	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/service"
	"crimson/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMessagingHost = "wa.me"

type checkoutService struct {
	sessions      service.CartSessionStore
	qrCodeService service.QRCodeService
	messagingHost string
	operatorPhone string
	currency      string
	now           func() time.Time
	random        io.Reader
	logger        *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Sessions      service.CartSessionStore
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	cfg := params.Config.Checkout

	host := cfg.MessagingHost
	if host == "" {
		host = defaultMessagingHost
	}
	currency := cfg.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	return &checkoutService{
		sessions:      params.Sessions,
		qrCodeService: params.QRCodeService,
		messagingHost: host,
		operatorPhone: digitsOnly(cfg.OperatorPhone),
		currency:      currency,
		now:           time.Now,
		random:        rand.Reader,
		logger:        params.Logger,
	}
}

func (srv *checkoutService) InitiateCheckout(ctx context.Context, sessionKey, email string) (*entity.OrderHandoff, error) {
	var handoff *entity.OrderHandoff
	err := srv.sessions.With(ctx, sessionKey, func(cart *entity.Cart) error {
		if cart.IsEmpty() {
			return domainerrors.ErrCartEmpty
		}

		orderID, err := entity.NewOrderID(srv.now(), srv.random)
		if err != nil {
			return err
		}

		message := entity.BuildOrderMessage(cart, orderID, entity.OrderUsername(email), srv.currency)
		handoff = &entity.OrderHandoff{
			OrderID:  orderID,
			Message:  message,
			DeepLink: buildDeepLink(srv.messagingHost, srv.operatorPhone, message),
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initiate checkout")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Checkout handed off", slog.String("orderID", handoff.OrderID))

	return handoff, nil
}

func (srv *checkoutService) CheckoutQR(ctx context.Context, sessionKey, email string) ([]byte, *entity.OrderHandoff, error) {
	handoff, err := srv.InitiateCheckout(ctx, sessionKey, email)
	if err != nil {
		return nil, nil, err
	}

	png, err := srv.qrCodeService.EncodeURL(handoff.DeepLink)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to render checkout QR code")
	}

	return png, handoff, nil
}

// buildDeepLink returns https://<host>/<phone>?text=<message> with spaces
// encoded as %20 rather than '+'.
func buildDeepLink(host, phone, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return "https://" + host + "/" + phone + "?text=" + text
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, s)
}
