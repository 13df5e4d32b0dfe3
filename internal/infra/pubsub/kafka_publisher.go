package pubsub

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

// kafkaWriter is the subset of *kafka.Writer the sink needs.
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaSink keys messages by listing id, so every event for one listing lands
// on the same partition in order.
type kafkaSink struct {
	writer kafkaWriter
	topic  string
}

func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
}

func (s *kafkaSink) send(ctx context.Context, msg *outbound) (string, error) {
	headers := make([]kafka.Header, 0, len(msg.attributes))
	for k, v := range msg.attributes {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	err := s.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(msg.key),
		Value:   msg.data,
		Headers: headers,
		Time:    msg.occurredAt,
	})
	if err != nil {
		return "", errors.Wrapf(err, "write to kafka topic %s", s.topic)
	}

	return "", nil
}

func (s *kafkaSink) close() error {
	return errors.WithStack(s.writer.Close())
}
