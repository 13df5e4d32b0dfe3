package worker

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crimson/config"
	"crimson/internal/delivery/worker/handler"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"
	"crimson/internal/infra/pubsub"
	mockUsecase "crimson/internal/mocks/usecase"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWorkerServer_Routes(t *testing.T) {
	cfg := &config.Config{}
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config:         cfg,
		Logger:         testLogger,
		NotificationUC: notificationUC,
	})

	e := newEcho(ServerParams{Cfg: cfg, Logger: testLogger, PushHandler: pushHandler})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	event := service.ModerationEvent{
		ListingModerated: entity.ListingModerated{
			ListingID: uuid.New(),
			SellerID:  uuid.New(),
			Action:    entity.ModerationDelete,
		},
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PubSubPushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	notificationUC.EXPECT().NotifyModeration(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, got *service.ModerationEvent) (*usecase.NotificationResult, error) {
			assert.Equal(t, event.ListingID, got.ListingID)

			return &usecase.NotificationResult{TotalSent: 2}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/local/events", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWorkerPort(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	assert.Equal(t, 8080, workerPort(cfg))

	cfg.Worker = &config.WorkerConfig{Port: 8081}
	assert.Equal(t, 8081, workerPort(cfg))
}
