package handler

import (
	"log/slog"
	"net/http"
	"time"

	"crimson/internal/delivery/api/middleware"
	"crimson/internal/delivery/api/response"
	"crimson/internal/domain/entity"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves /api/v1/devices, the push targets of the signed-in user.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
	FCMToken string `json:"fcm_token" validate:"required,max=512"`
}

type RotateTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=512"`
}

// DeviceResponse never carries the full FCM token.
type DeviceResponse struct {
	ID        uuid.UUID       `json:"id"`
	DeviceID  string          `json:"device_id"`
	Platform  entity.Platform `json:"platform"`
	TokenHint string          `json:"token_hint"`
	Active    bool            `json:"active"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func toDeviceResponse(d *entity.UserDevice) DeviceResponse {
	return DeviceResponse{
		ID:        d.ID,
		DeviceID:  d.DeviceID,
		Platform:  d.Platform,
		TokenHint: d.TokenHint(),
		Active:    d.IsActive,
		UpdatedAt: d.UpdatedAt,
	}
}

// RegisterDevice handles POST /api/v1/devices. Registering a known
// device_id again refreshes it and still answers 201.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), ownerID, usecase.DeviceRegistration{
		DeviceID: req.DeviceID,
		Platform: entity.Platform(req.Platform),
		FCMToken: req.FCMToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDeviceResponse(device))
}

func (h *DeviceHandler) ListDevices(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]DeviceResponse, len(devices))
	for i, d := range devices {
		out[i] = toDeviceResponse(d)
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *DeviceHandler) RotateToken(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req RotateTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FCM token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	device, err := h.deviceUC.RotateToken(c.Request().Context(), ownerID, id, req.FCMToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDeviceResponse(device))
}

// DeactivateDevice stops pushes to a device. Registering it again revives it.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated successfully"})
}
