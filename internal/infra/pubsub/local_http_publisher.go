package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	deliverycontext "crimson/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/moderation-sub"
	localTimeout      = 30 * time.Second
)

// localSink posts events straight to the notifier in push format, standing
// in for Pub/Sub during development.
type localSink struct {
	endpoint string
	client   *http.Client
}

func newLocalSink(endpoint string) *localSink {
	return &localSink{endpoint: endpoint, client: &http.Client{Timeout: localTimeout}}
}

func (s *localSink) send(ctx context.Context, msg *outbound) (string, error) {
	messageID := uuid.NewString()

	body, err := json.Marshal(newPushMessage(msg, messageID, localSubscription, time.Now()))
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := msg.attributes[AttrRequestID]; id != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, id)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return "", errors.Errorf("notifier answered %d", resp.StatusCode)
	}

	return messageID, nil
}

func (s *localSink) close() error {
	s.client.CloseIdleConnections()

	return nil
}
