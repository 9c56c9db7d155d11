package handler

import (
	"log/slog"
	"net/http"

	"checkin/internal/delivery/http/middleware"
	"checkin/internal/delivery/http/response"
	"checkin/internal/usecase"
	"checkin/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerDeviceRequest is the payload for device registration.
type registerDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceHandler holds dependencies for device-related handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register registers a device for push delivery or refreshes its FCM token.
func (h *DeviceHandler) Register(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "FCM token, device ID and platform are required")
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// List returns the caller's active devices.
func (h *DeviceHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.uc.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// Deactivate marks one of the caller's devices inactive.
func (h *DeviceHandler) Deactivate(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Device ID must be a UUID")
	}

	if err := h.uc.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		switch {
		case errors.Is(err, impl.ErrDeviceNotFound):
			return response.NotFound(c, "DEVICE_NOT_FOUND", "Device not found")
		case errors.Is(err, impl.ErrDeviceUnauthorized):
			return response.Forbidden(c, "DEVICE_FORBIDDEN", "Device belongs to another account")
		default:
			return errors.WithStack(err)
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated"})
}
