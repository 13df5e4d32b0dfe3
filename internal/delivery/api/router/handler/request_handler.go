package handler

import (
	"log/slog"
	"net/http"

	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/response"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler serves the request board.
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

type CreateRequestRequest struct {
	Title       string  `json:"title" validate:"notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Category    *string `json:"category" validate:"omitempty,max=80"`
}

func (h *RequestHandler) ListRequests(c echo.Context) error {
	requests, err := h.requestUC.ListRequests(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// ListUserRequests returns the public requests of the :id user.
func (h *RequestHandler) ListUserRequests(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	requests, err := h.requestUC.ListUserRequests(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.requestUC.ListUserRequests(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// CreateRequest posts a request. It is live immediately.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	created, err := h.requestUC.CreateRequest(c.Request().Context(), userID, &usecase.CreateRequestInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.requestUC.DeleteRequest(c.Request().Context(), userID, requestID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Request deleted successfully"})
}
