package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hetulpatel/texttosql/internal/bootstrap"
	"github.com/hetulpatel/texttosql/internal/config"
	"github.com/hetulpatel/texttosql/internal/logging"
	"github.com/hetulpatel/texttosql/internal/shell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("[web] config: %v", err)
	}
	logging.InitFromEnv()
	if _, err := os.Stat(cfg.SQLite.Path); err != nil {
		logging.Warnf("[web] %s not found; run sqlite_seed first or every query will fail", cfg.SQLite.Path)
	}

	svc, cleanup, err := bootstrap.Service(cfg)
	if err != nil {
		logging.Fatalf("[web] init: %v", err)
	}
	defer cleanup()

	if logging.CurrentLevel() > logging.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           shell.NewRouter(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Errorf("[web] shutdown: %v", err)
		}
	}()

	logging.Infof("[web] serving Text to SQL on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatalf("[web] serve: %v", err)
	}
}
