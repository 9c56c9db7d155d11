// Package handler processes Pub/Sub push deliveries for the notify worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"checkin/config"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/constants"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/repository"
	"checkin/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying check-in events
type PushHandler struct {
	verifyPushAuth   bool
	logger           *slog.Logger
	notificationSvc  service.NotificationService
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	NotificationSvc  service.NotificationService
	DeviceRepo       repository.DeviceRepository
	NotificationRepo repository.NotificationRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push auth only applies to real Google Pub/Sub outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:   verifyPushAuth,
		logger:           params.Logger,
		notificationSvc:  params.NotificationSvc,
		deviceRepo:       params.DeviceRepo,
		notificationRepo: params.NotificationRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.CheckinEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse check-in event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing check-in event",
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
		slog.String("couple_id", event.CoupleID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process check-in event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// 503 triggers a Pub/Sub retry; 200 acknowledges so malformed
		// events are not retried forever
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Check-in event processed",
		slog.String("event_id", event.EventID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.CheckinEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.RequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent delivers one check-in event to the recipient's devices
func (h *PushHandler) processEvent(ctx context.Context, event *service.CheckinEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	coupleID, senderID, recipientID, err := h.parseEventIDs(event)
	if err != nil {
		return err
	}

	devices, err := h.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		logger.Info("[Worker] Recipient has no active devices",
			slog.String("event_id", event.EventID),
			slog.String("recipient_id", event.RecipientID),
		)

		return nil
	}

	title, body, data := h.prepareNotificationContent(event)
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	totalSent, totalFailed, invalidTokens := h.sendBatchedNotifications(ctx, tokens, title, body, data)

	h.cleanupInvalidTokens(ctx, invalidTokens)

	h.saveDeliveryRecord(ctx, event, coupleID, senderID, recipientID, totalSent, totalFailed, len(invalidTokens))

	return nil
}

// parseEventIDs parses and validates all IDs from the event
func (h *PushHandler) parseEventIDs(event *service.CheckinEvent) (coupleID, senderID, recipientID uuid.UUID, err error) {
	coupleID, err = uuid.Parse(event.CoupleID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.WithStack(err)
	}

	senderID, err = uuid.Parse(event.SenderID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.WithStack(err)
	}

	recipientID, err = uuid.Parse(event.RecipientID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, errors.WithStack(err)
	}

	return coupleID, senderID, recipientID, nil
}

// prepareNotificationContent creates the notification title, body, and data
func (h *PushHandler) prepareNotificationContent(event *service.CheckinEvent) (title, body string, data map[string]string) {
	switch event.Kind {
	case entity.NotificationKindPairingCompleted:
		title = "You're paired!"
		body = "Your partner accepted the invite. Start your first check-in together."
	default:
		title = "Your partner checked in"
		if event.Prompt == string(entity.PromptMorning) {
			body = "See what they need today."
		} else {
			body = "See how their day went."
		}
	}

	data = map[string]string{
		"event_id":  event.EventID,
		"kind":      event.Kind,
		"couple_id": event.CoupleID,
		"sender_id": event.SenderID,
	}
	if event.Day != "" {
		data["day"] = event.Day
	}
	if event.Prompt != "" {
		data["prompt"] = event.Prompt
	}

	return title, body, data
}

// sendBatchedNotifications sends notifications in batches and collects results
func (h *PushHandler) sendBatchedNotifications(ctx context.Context, tokens []string, title, body string, data map[string]string) (sent, failed int, invalidTokens []string) {
	const batchSize = 500

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	totalSent := 0
	totalFailed := 0
	var allInvalidTokens []string

	for idx := 0; idx < len(tokens); idx += batchSize {
		end := min(idx+batchSize, len(tokens))
		batch := tokens[idx:end]

		successCount, failureCount, batchInvalidTokens, sendErr := h.notificationSvc.SendBatchNotification(
			ctx, batch, title, body, data,
		)

		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			totalFailed += len(batch)

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		allInvalidTokens = append(allInvalidTokens, batchInvalidTokens...)
	}

	return totalSent, totalFailed, allInvalidTokens
}

// cleanupInvalidTokens deactivates devices Firebase reported as unregistered
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string) {
	if len(invalidTokens) == 0 {
		return
	}

	if err := h.deviceRepo.DeactivateDevicesByTokens(ctx, invalidTokens); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Failed to deactivate invalid devices",
			slog.Int("token_count", len(invalidTokens)),
			slog.Any("error", err),
		)
	}
}

// saveDeliveryRecord records the delivery attempt for bookkeeping
func (h *PushHandler) saveDeliveryRecord(ctx context.Context, event *service.CheckinEvent, coupleID, senderID, recipientID uuid.UUID, sent, failed, invalidTokensCount int) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	record := &entity.CheckinNotification{
		ID:          uuid.New(),
		CoupleID:    coupleID,
		Kind:        event.Kind,
		SenderID:    senderID,
		RecipientID: recipientID,
		TotalSent:   sent,
		TotalFailed: failed,
		SentAt:      time.Now(),
	}

	if err := h.notificationRepo.CreateNotification(ctx, record); err != nil {
		logger.Error("[Worker] Failed to record delivery attempt", slog.Any("error", err))
	}

	logger.Info("[Worker] Notification sending completed",
		slog.String("event_id", event.EventID),
		slog.Int("total_sent", sent),
		slog.Int("total_failed", failed),
		slog.Int("invalid_tokens", invalidTokensCount),
	)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
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
