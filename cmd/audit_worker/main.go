package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/hetulpatel/texttosql/internal/config"
	"github.com/hetulpatel/texttosql/internal/kafka"
	"github.com/hetulpatel/texttosql/internal/logging"
	"github.com/hetulpatel/texttosql/internal/models"
	"github.com/hetulpatel/texttosql/internal/workers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[audit-worker] config: %v", err)
	}
	logging.InitFromEnv()
	brokers := cfg.Audit.Brokers
	if len(brokers) == 0 {
		logging.Fatalf("[audit-worker] KAFKA_BROKERS is not set")
	}

	waitCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	if err := kafka.WaitForBroker(waitCtx, brokers); err != nil {
		logging.Fatalf("[audit-worker] wait for broker: %v", err)
	}
	cancel()

	ensureCtx, cancelEnsure := context.WithTimeout(ctx, 30*time.Second)
	if err := kafka.EnsureTopic(ensureCtx, brokers, cfg.Audit.Topic); err != nil {
		logging.Errorf("[audit-worker] ensure topic warning: %v", err)
	}
	cancelEnsure()

	appendLog := workers.AuditLogHandler(cfg.Audit.LogPath)
	handler := func(ctx context.Context, ev *models.QueryEvent) error {
		logging.Infof("[audit-worker] id=%s status=%s stage=%s rows=%d question=%q", ev.ID, ev.Status, ev.Stage, ev.RowCount, ev.Question)
		return appendLog(ctx, ev)
	}

	logging.Infof("[audit-worker] consuming %s with group %s (%d workers) -> %s", cfg.Audit.Topic, cfg.Audit.Group, cfg.Audit.Concurrency, cfg.Audit.LogPath)
	workers.Run(ctx, brokers, cfg.Audit.Topic, cfg.Audit.Group, cfg.Audit.Concurrency, handler)
}
