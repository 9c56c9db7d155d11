package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkin/config"
	"checkin/internal/domain/entity"
	"checkin/internal/domain/service"
	mockRepo "checkin/internal/mocks/repository"
	mockSvc "checkin/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushHandlerFixtures holds all test dependencies for push handler tests.
type pushHandlerFixtures struct {
	handler          *PushHandler
	notificationSvc  *mockSvc.MockNotificationService
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	notificationSvc := mockSvc.NewMockNotificationService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	handler := NewPushHandler(PushHandlerParams{
		Config:           &config.Config{},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc:  notificationSvc,
		DeviceRepo:       deviceRepo,
		NotificationRepo: notificationRepo,
	})

	return pushHandlerFixtures{
		handler:          handler,
		notificationSvc:  notificationSvc,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
	}
}

// performPush posts a Pub/Sub envelope carrying the given event to the handler.
func performPush(t *testing.T, handler *PushHandler, event *service.CheckinEvent) *httptest.ResponseRecorder {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/test/subscriptions/checkin-events"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	return performRawPush(t, handler, body)
}

func performRawPush(t *testing.T, handler *PushHandler, body []byte) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := handler.HandlePush(e.NewContext(req, rec))
	require.NoError(t, err)

	return rec
}

func newCheckinEvent(kind string) *service.CheckinEvent {
	return &service.CheckinEvent{
		RequestID:   uuid.New().String(),
		EventID:     uuid.New().String(),
		Kind:        kind,
		CoupleID:    uuid.New().String(),
		SenderID:    uuid.New().String(),
		RecipientID: uuid.New().String(),
	}
}

func TestPushHandler_HandlePush_PartnerCheckin(t *testing.T) {
	fx := createTestPushHandler(t)

	event := newCheckinEvent(entity.NotificationKindPartnerCheckin)
	event.Day = "2026-08-30"
	event.Prompt = string(entity.PromptMorning)
	recipientID := uuid.MustParse(event.RecipientID)

	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: recipientID, FCMToken: "token-1", IsActive: true},
		{ID: uuid.New(), UserID: recipientID, FCMToken: "token-2", IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return(devices, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-1", "token-2"},
			"Your partner checked in", "See what they need today.",
			mock.AnythingOfType("map[string]string")).
		Run(func(_ context.Context, _ []string, _, _ string, data map[string]string) {
			assert.Equal(t, event.EventID, data["event_id"])
			assert.Equal(t, event.CoupleID, data["couple_id"])
			assert.Equal(t, "2026-08-30", data["day"])
			assert.Equal(t, "morning", data["prompt"])
		}).
		Return(2, 0, nil, nil)

	fx.notificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.AnythingOfType("*entity.CheckinNotification")).
		Run(func(_ context.Context, record *entity.CheckinNotification) {
			assert.Equal(t, event.Kind, record.Kind)
			assert.Equal(t, recipientID, record.RecipientID)
			assert.Equal(t, 2, record.TotalSent)
			assert.Equal(t, 0, record.TotalFailed)
		}).
		Return(nil)

	rec := performPush(t, fx.handler, event)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_PairingCompletedContent(t *testing.T) {
	fx := createTestPushHandler(t)

	event := newCheckinEvent(entity.NotificationKindPairingCompleted)
	recipientID := uuid.MustParse(event.RecipientID)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, FCMToken: "token-1", IsActive: true},
		}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-1"},
			"You're paired!", "Your partner accepted the invite. Start your first check-in together.",
			mock.AnythingOfType("map[string]string")).
		Return(1, 0, nil, nil)

	fx.notificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.AnythingOfType("*entity.CheckinNotification")).
		Return(nil)

	rec := performPush(t, fx.handler, event)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_NoActiveDevices(t *testing.T) {
	fx := createTestPushHandler(t)

	event := newCheckinEvent(entity.NotificationKindPartnerCheckin)
	recipientID := uuid.MustParse(event.RecipientID)

	// Nothing to deliver to: the event is acknowledged without sending.
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return(nil, nil)

	rec := performPush(t, fx.handler, event)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_DeviceLookupFailureIsRetried(t *testing.T) {
	fx := createTestPushHandler(t)

	event := newCheckinEvent(entity.NotificationKindPartnerCheckin)
	recipientID := uuid.MustParse(event.RecipientID)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return(nil, errors.New("connection refused"))

	// 503 asks Pub/Sub to redeliver.
	rec := performPush(t, fx.handler, event)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEventIsAcked(t *testing.T) {
	fx := createTestPushHandler(t)

	// An unparseable recipient id can never succeed; acknowledging stops the
	// redelivery loop.
	event := newCheckinEvent(entity.NotificationKindPartnerCheckin)
	event.RecipientID = "not-a-uuid"

	rec := performPush(t, fx.handler, event)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	fx := createTestPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "not base64 at all!!!"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	rec := performRawPush(t, fx.handler, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidTokensAreDeactivated(t *testing.T) {
	fx := createTestPushHandler(t)

	event := newCheckinEvent(entity.NotificationKindPartnerCheckin)
	event.Prompt = string(entity.PromptEvening)
	recipientID := uuid.MustParse(event.RecipientID)

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: recipientID, FCMToken: "stale-token", IsActive: true},
			{ID: uuid.New(), UserID: recipientID, FCMToken: "live-token", IsActive: true},
		}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"stale-token", "live-token"},
			"Your partner checked in", "See how their day went.",
			mock.AnythingOfType("map[string]string")).
		Return(1, 1, []string{"stale-token"}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateDevicesByTokens(mock.Anything, []string{"stale-token"}).
		Return(nil)

	fx.notificationRepo.EXPECT().
		CreateNotification(mock.Anything, mock.AnythingOfType("*entity.CheckinNotification")).
		Run(func(_ context.Context, record *entity.CheckinNotification) {
			assert.Equal(t, 1, record.TotalSent)
			assert.Equal(t, 1, record.TotalFailed)
		}).
		Return(nil)

	rec := performPush(t, fx.handler, event)
	assert.Equal(t, http.StatusOK, rec.Code)
}
