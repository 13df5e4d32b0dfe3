package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crimson/config"
	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/router/handler"
	"crimson/internal/delivery/api/validator"
	"crimson/internal/domain/constants"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"
	mockSvc "crimson/internal/mocks/service"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	echo         *echo.Echo
	tokens       *mockSvc.MockTokenService
	moderationUC *mockUsecase.MockModerationUsecase
	cartUC       *mockUsecase.MockCartUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}

	f := &routerFixture{
		echo:         echo.New(),
		tokens:       mockSvc.NewMockTokenService(t),
		moderationUC: mockUsecase.NewMockModerationUsecase(t),
		cartUC:       mockUsecase.NewMockCartUsecase(t),
	}
	f.echo.Validator = validator.New()

	NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger}),
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{CategoryUC: mockUsecase.NewMockCategoryUsecase(t), Logger: logger}),
		ListingHandler:  handler.NewListingHandler(handler.ListingHandlerParams{ListingUC: mockUsecase.NewMockListingUsecase(t), Config: cfg, Logger: logger}),
		AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{ModerationUC: f.moderationUC, Config: cfg, Logger: logger}),
		RequestHandler:  handler.NewRequestHandler(handler.RequestHandlerParams{RequestUC: mockUsecase.NewMockRequestUsecase(t), Logger: logger}),
		CartHandler: handler.NewCartHandler(handler.CartHandlerParams{
			CartUC:     f.cartUC,
			CheckoutUC: mockUsecase.NewMockCheckoutUsecase(t),
			ProfileUC:  mockUsecase.NewMockProfileUsecase(t),
			Logger:     logger,
		}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t), Logger: logger}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(f.tokens),
		Config:         cfg,
	}).RegisterRoutes(f.echo)

	return f
}

func (f *routerFixture) token(raw string, roles ...string) uuid.UUID {
	userID := uuid.New()
	f.tokens.EXPECT().ValidateToken(raw, service.TokenTypeAccess).
		Return(&service.Claims{UserID: userID, Roles: roles}, nil).Maybe()

	return userID
}

func (f *routerFixture) serve(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusOK, f.serve(http.MethodGet, "/health", "").Code)
}

func TestRouter_AdminRoutesRequireAdminRole(t *testing.T) {
	f := newRouterFixture(t)
	listingID := uuid.New()
	f.token("user-token", "user")
	adminID := f.token("admin-token", "user", "admin")
	f.moderationUC.EXPECT().Approve(mock.Anything, adminID, listingID).
		Return(&entity.Listing{ID: listingID, Type: entity.ListingTypeBook, Status: entity.ListingStatusApproved}, nil)

	target := "/api/v1/admin/listings/" + listingID.String() + "/approve"

	assert.Equal(t, http.StatusUnauthorized, f.serve(http.MethodPost, target, "").Code)
	assert.Equal(t, http.StatusForbidden, f.serve(http.MethodPost, target, "user-token").Code)
	assert.Equal(t, http.StatusOK, f.serve(http.MethodPost, target, "admin-token").Code)
}

func TestRouter_SellerRoutesRequireToken(t *testing.T) {
	f := newRouterFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.serve(http.MethodPost, "/api/v1/listings", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.serve(http.MethodGet, "/api/v1/me/listings", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.serve(http.MethodGet, "/api/v1/profile", "").Code)
}

func TestRouter_CartAllowsGuests(t *testing.T) {
	f := newRouterFixture(t)
	f.cartUC.EXPECT().GetCart(mock.Anything, mock.Anything).Return(&usecase.CartView{}, nil)

	rec := f.serve(http.MethodGet, "/api/v1/cart", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constants.HeaderCartSession))
}

func TestIsUpload(t *testing.T) {
	f := newRouterFixture(t)
	f.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			flag := "no"
			if IsUpload(c) {
				flag = "yes"
			}
			c.Response().Header().Set("X-Upload", flag)

			return next(c)
		}
	})

	rec := f.serve(http.MethodPost, "/api/v1/listings/"+uuid.NewString()+"/image", "")
	assert.Equal(t, "yes", rec.Header().Get("X-Upload"))

	rec = f.serve(http.MethodPost, "/api/v1/listings", "")
	assert.Equal(t, "no", rec.Header().Get("X-Upload"))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "5184K", formatBytes(5<<20+64<<10))
	assert.Equal(t, "1500B", formatBytes(1500))
}
