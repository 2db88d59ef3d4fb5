package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/simaogato/shifttrade-backend/internal/domain"
)

const writeTimeout = 5 * time.Second

// messageWriter is the subset of *kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ImportEventPublisher implements domain.ImportEventPublisher on a Kafka topic
type ImportEventPublisher struct {
	writer messageWriter
}

// NewImportEventPublisher creates a publisher writing to topic on the given brokers
func NewImportEventPublisher(brokers []string, topic string) *ImportEventPublisher {
	return &ImportEventPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes one event keyed by its import id
func (p *ImportEventPublisher) Publish(ctx context.Context, event domain.ImportEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal import event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(event.ImportID.String()),
		Value: value,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write import event: %w", err)
	}

	return nil
}

// Close flushes pending writes and releases the connection
func (p *ImportEventPublisher) Close() error {
	return p.writer.Close()
}
