package pubsub

import (
	"context"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleSink publishes to a Cloud Pub/Sub topic and waits for the server ack.
type googleSink struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
}

// newGoogleSink fails fast when the topic does not exist.
func newGoogleSink(ctx context.Context, projectID, topicID string) (*googleSink, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "look up topic %s", topic)
	}

	return &googleSink{client: client, publisher: client.Publisher(topicID)}, nil
}

func (s *googleSink) send(ctx context.Context, msg *outbound) (string, error) {
	result := s.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.data,
		Attributes: msg.attributes,
	})

	id, err := result.Get(ctx)

	return id, errors.WithStack(err)
}

func (s *googleSink) close() error {
	s.publisher.Stop()

	return errors.WithStack(s.client.Close())
}
