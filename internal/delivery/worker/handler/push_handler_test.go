package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"
	"crimson/internal/infra/pubsub"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newEvent() *service.ModerationEvent {
	return &service.ModerationEvent{
		ListingModerated: entity.ListingModerated{
			ListingID:   uuid.New(),
			SellerID:    uuid.New(),
			Title:       "Calculus textbook",
			Action:      entity.ModerationApprove,
			Status:      entity.ListingStatusApproved,
			ModeratorID: uuid.New(),
			OccurredAt:  time.Now().UTC(),
		},
	}
}

func pushBody(t *testing.T, event *service.ModerationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PubSubPushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := newEvent()

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(m *mockUsecase.MockNotificationUsecase)
		wantStatus int
	}{
		{
			name: "notifies seller",
			body: func(t *testing.T) string {
				return pushBody(t, event, map[string]string{pubsub.AttrRequestID: "req-attr"})
			},
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().NotifyModeration(mock.Anything, mock.MatchedBy(func(e *service.ModerationEvent) bool {
					return e.ListingID == event.ListingID && e.Action == entity.ModerationApprove
				})).RunAndReturn(func(ctx context.Context, _ *service.ModerationEvent) (*usecase.NotificationResult, error) {
					assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

					return &usecase.NotificationResult{TotalSent: 1}, nil
				})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "notification failure is retried",
			body: func(t *testing.T) string {
				return pushBody(t, event, nil)
			},
			setupMock: func(m *mockUsecase.MockNotificationUsecase) {
				m.EXPECT().NotifyModeration(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "incomplete event is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, &service.ModerationEvent{}, nil)
			},
			setupMock:  func(m *mockUsecase.MockNotificationUsecase) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "data is not base64",
			body: func(t *testing.T) string {
				return `{"message":{"data":"%%%"}}`
			},
			setupMock:  func(m *mockUsecase.MockNotificationUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data is not an event",
			body: func(t *testing.T) string {
				return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`
			},
			setupMock:  func(m *mockUsecase.MockNotificationUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notificationUC := mockUsecase.NewMockNotificationUsecase(t)
			tt.setupMock(notificationUC)

			h := &PushHandler{logger: testLogger, notificationUC: notificationUC}
			rec := doPush(h.HandlePush, tt.body(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_Verification(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	h := &PushHandler{
		verifyPushAuth: true,
		verify:         func(*http.Request) error { return errors.New("bad token") },
		logger:         testLogger,
		notificationUC: notificationUC,
	}

	rec := doPush(h.HandlePush, pushBody(t, newEvent(), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// the local endpoint never verifies
	notificationUC.EXPECT().NotifyModeration(mock.Anything, mock.Anything).Return(&usecase.NotificationResult{}, nil)
	rec = doPush(h.HandleLocalEvent, pushBody(t, newEvent(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Process(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := &PushHandler{logger: testLogger, notificationUC: notificationUC}

	err := h.Process(context.Background(), &service.ModerationEvent{})
	assert.ErrorIs(t, err, ErrInvalidEvent)
	assert.False(t, IsRetryable(err))

	notificationUC.EXPECT().NotifyModeration(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
	err = h.Process(context.Background(), newEvent())
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
}

func TestResolveRequestID(t *testing.T) {
	withPayload := newEvent()
	withPayload.RequestID = "req-payload"
	ctx := deliverycontext.WithRequestID(context.Background(), "req-ctx")

	assert.Equal(t, "req-attr", ResolveRequestID(ctx, "req-attr", withPayload))
	assert.Equal(t, "req-payload", ResolveRequestID(ctx, "", withPayload))
	assert.Equal(t, "req-ctx", ResolveRequestID(ctx, "", newEvent()))

	minted := ResolveRequestID(context.Background(), "", newEvent())
	_, err := uuid.Parse(minted)
	assert.NoError(t, err)
}
