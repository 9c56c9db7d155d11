package handler

import (
	"log/slog"
	"net/http"

	"checkin/internal/delivery/http/middleware"
	"checkin/internal/delivery/http/response"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// acceptInviteRequest carries the invite URL or deep link to claim.
type acceptInviteRequest struct {
	URL string `json:"url" validate:"required"`
}

// PairingHandler holds dependencies for pairing-related handlers.
type PairingHandler struct {
	pairingUc usecase.PairingUsecase
	watchUc   usecase.PairingWatchUsecase
	logger    *slog.Logger
}

// NewPairingHandler is the constructor for PairingHandler, injected by Fx.
func NewPairingHandler(pairingUc usecase.PairingUsecase, watchUc usecase.PairingWatchUsecase, logger *slog.Logger) *PairingHandler {
	return &PairingHandler{
		pairingUc: pairingUc,
		watchUc:   watchUc,
		logger:    logger,
	}
}

// EnsureCouple finds or creates the caller's couple.
func (h *PairingHandler) EnsureCouple(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	couple, err := h.pairingUc.EnsureCouple(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, couple)
}

// CreateInvite issues (or re-returns) the couple's invite link. Owner-only.
func (h *PairingHandler) CreateInvite(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	link, err := h.pairingUc.CreateInviteLink(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link)
}

// InviteQR renders the invite link as a PNG QR code.
func (h *PairingHandler) InviteQR(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	link, err := h.pairingUc.CreateInviteLink(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", link.QRCode)
}

// AcceptInvite claims an invite URL or deep link for the caller.
func (h *PairingHandler) AcceptInvite(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req acceptInviteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invite URL is required")
	}

	status, err := h.pairingUc.AcceptInviteLink(c.Request().Context(), userID, req.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status)
}

// Status reports the caller's pairing state without side effects.
func (h *PairingHandler) Status(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.pairingUc.CheckPairingStatus(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status)
}

// Complete revokes any leftover invite credential once both sides are paired.
func (h *PairingHandler) Complete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.pairingUc.CompletePairing(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Pairing completed"})
}

// StartWatch begins the bounded background poll for pairing completion.
func (h *PairingHandler) StartWatch(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.watchUc.StartWatch(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"state": string(usecase.WatchPolling),
	})
}

// CancelWatch stops the caller's watch if one is running.
func (h *PairingHandler) CancelWatch(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	h.watchUc.CancelWatch(userID)

	return response.Success(c, http.StatusOK, map[string]string{
		"state": string(h.watchUc.WatchStatus(userID)),
	})
}

// WatchStatus reports the state of the caller's watch.
func (h *PairingHandler) WatchStatus(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"state": string(h.watchUc.WatchStatus(userID)),
	})
}
