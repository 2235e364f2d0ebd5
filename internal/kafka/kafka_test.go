package kafka

import (
	"context"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNewWriterConfig(t *testing.T) {
	w := NewWriter([]string{"a:9092", "b:9092"}, DefaultAuditTopic)
	defer w.Close()

	assert.Equal(t, DefaultAuditTopic, w.Topic)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
}

func TestNoBrokers(t *testing.T) {
	assert.Error(t, WaitForBroker(context.Background(), nil))
	assert.Error(t, EnsureTopic(context.Background(), nil, DefaultAuditTopic))
}
