// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crimson/config"
	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/router/handler"
	"crimson/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// uploadOverhead leaves room for multipart framing around the image bytes.
const uploadOverhead = 64 << 10

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	ListingHandler  *handler.ListingHandler
	AdminHandler    *handler.AdminHandler
	RequestHandler  *handler.RequestHandler
	CartHandler     *handler.CartHandler
	ProfileHandler  *handler.ProfileHandler
	DeviceHandler   *handler.DeviceHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	listingHandler  *handler.ListingHandler
	adminHandler    *handler.AdminHandler
	requestHandler  *handler.RequestHandler
	cartHandler     *handler.CartHandler
	profileHandler  *handler.ProfileHandler
	deviceHandler   *handler.DeviceHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		listingHandler:  params.ListingHandler,
		adminHandler:    params.AdminHandler,
		requestHandler:  params.RequestHandler,
		cartHandler:     params.CartHandler,
		profileHandler:  params.ProfileHandler,
		deviceHandler:   params.DeviceHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.POST("/google/callback", r.authHandler.GoogleCallback)
	}

	apiV1 := e.Group("/api/v1")
	authenticated := r.authMiddleware.Authenticate
	optional := r.authMiddleware.OptionalAuthenticate

	apiV1.GET("/categories", r.categoryHandler.ListCategories)
	apiV1.GET("/categories/:group/:slug", r.categoryHandler.GetCategory)

	// Listings: public reads, seller writes
	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.GET("", r.listingHandler.ListListings)
		listingsGroup.GET("/featured", r.listingHandler.ListFeatured)
		listingsGroup.GET("/:id", r.listingHandler.GetListing, optional)
		listingsGroup.POST("", r.listingHandler.CreateListing, authenticated)
		listingsGroup.POST("/:id/image", r.listingHandler.UploadImage, authenticated, r.uploadLimit())
		listingsGroup.DELETE("/:id", r.listingHandler.DeleteListing, authenticated)
	}

	requestsGroup := apiV1.Group("/requests")
	{
		requestsGroup.GET("", r.requestHandler.ListRequests)
		requestsGroup.POST("", r.requestHandler.CreateRequest, authenticated)
		requestsGroup.DELETE("/:id", r.requestHandler.DeleteRequest, authenticated)
	}
	apiV1.GET("/users/:id/requests", r.requestHandler.ListUserRequests)

	meGroup := apiV1.Group("/me", authenticated)
	{
		meGroup.GET("/listings", r.listingHandler.ListMyListings)
		meGroup.GET("/requests", r.requestHandler.ListMyRequests)
	}

	// Cart works for guests and signed-in shoppers alike
	cartGroup := apiV1.Group("/cart", optional)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:listingId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:listingId", r.cartHandler.RemoveItem)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
		cartGroup.GET("/checkout/qr", r.cartHandler.CheckoutQR)
	}

	profileGroup := apiV1.Group("/profile", authenticated)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
	}

	devicesGroup := apiV1.Group("/devices", authenticated)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.RotateToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	// Admin routes re-check the admin flag in the usecases as well
	adminGroup := apiV1.Group("/admin", authenticated, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/listings", r.adminHandler.ListListings)
		adminGroup.POST("/listings/:id/approve", r.adminHandler.Approve)
		adminGroup.POST("/listings/:id/reject", r.adminHandler.Reject)
		adminGroup.POST("/listings/:id/restore", r.adminHandler.Restore)
		adminGroup.PUT("/listings/:id/featured", r.adminHandler.SetFeatured)
		adminGroup.DELETE("/listings/:id", r.adminHandler.DeleteListing)
		adminGroup.POST("/categories", r.categoryHandler.CreateCategory)
	}
}

// uploadLimit replaces the global body limit on the image route.
func (r *router) uploadLimit() echo.MiddlewareFunc {
	maxImage := int64(0)
	if r.config.ObjectStorage != nil {
		maxImage = r.config.ObjectStorage.MaxImageSize
	}

	return echomiddleware.BodyLimitWithConfig(echomiddleware.BodyLimitConfig{
		Limit: formatBytes(maxImage + uploadOverhead),
	})
}
