package workers

import (
	"context"
	"encoding/json"
	"sync"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/hetulpatel/texttosql/internal/kafka"
	"github.com/hetulpatel/texttosql/internal/logging"
	"github.com/hetulpatel/texttosql/internal/models"
)

type Handler func(context.Context, *models.QueryEvent) error

// MessageReader is the part of *kafka.Reader a worker consumes from.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Close() error
}

// Run starts workerCount consumers in one group and blocks until ctx ends.
func Run(ctx context.Context, brokers []string, topic, group string, workerCount int, handler Handler) {
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			reader := kafka.NewReader(brokers, topic, group)
			defer reader.Close()
			Consume(ctx, reader, handler)
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
}

// Consume reads until ctx is cancelled; bad messages are logged and skipped.
func Consume(ctx context.Context, reader MessageReader, handler Handler) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logging.Errorf("[audit-worker] read error: %v", err)
			continue
		}

		var event models.QueryEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logging.Errorf("[audit-worker] unmarshal error: %v", err)
			continue
		}

		if handler != nil {
			if err := handler(ctx, &event); err != nil {
				logging.Errorf("[audit-worker] handler error id=%s: %v", event.ID, err)
			}
		}
	}
}
