package pubsub

import (
	"encoding/base64"
	"time"
)

// PubSubPushMessage is the body Google Pub/Sub sends to push endpoints. The
// local transport produces the same shape so the notifier has one decoder.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func newPushMessage(msg *outbound, messageID, subscription string, publishedAt time.Time) *PubSubPushMessage {
	push := &PubSubPushMessage{Subscription: subscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	push.Message.Attributes = msg.attributes
	push.Message.MessageID = messageID
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return push
}
