package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/hetulpatel/texttosql/internal/models"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// PublishQueryEvent writes one audit event keyed by its id.
func PublishQueryEvent(ctx context.Context, writer MessageWriter, event models.QueryEvent) error {
	if writer == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal query event %s: %w", event.ID, err)
	}
	return writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.ID), Value: payload})
}
