package main

import (
	"context"

	"github.com/hetulpatel/texttosql/internal/config"
	"github.com/hetulpatel/texttosql/internal/logging"
	"github.com/hetulpatel/texttosql/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("config: %v", err)
	}
	logging.InitFromEnv()
	store, err := sqlite.Open(cfg.SQLite.Path)
	if err != nil {
		logging.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	if err := store.ClearTables(context.Background()); err != nil {
		logging.Fatalf("clear tables: %v", err)
	}
	logging.Infof("COURSE and STUDENT tables cleared at %s", store.Path())
}
