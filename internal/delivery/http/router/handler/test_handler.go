package handler

import (
	"net/http"

	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/delivery/http/middleware"
	"checkin/internal/delivery/http/response"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler handles test endpoints, enabled only when testRoutes is on.
type TestHandler struct {
	eventPublisher service.EventPublisher
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(eventPublisher service.EventPublisher) *TestHandler {
	return &TestHandler{eventPublisher: eventPublisher}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID := c.Get(middleware.ContextKeyUserID)

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// TestPublishEvent publishes a synthetic check-in event so the push worker
// pipeline can be exercised end to end without a paired couple.
func (h *TestHandler) TestPublishEvent(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ctx := c.Request().Context()
	event := &service.CheckinEvent{
		RequestID:   deliverycontext.RequestIDFromContext(ctx),
		EventID:     uuid.New().String(),
		Kind:        entity.NotificationKindPartnerCheckin,
		CoupleID:    uuid.New().String(),
		SenderID:    userID.String(),
		RecipientID: userID.String(),
	}

	if err := h.eventPublisher.PublishCheckinEvent(ctx, event); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"event_id": event.EventID})
}
