package bootstrap

import (
	"fmt"

	"github.com/hetulpatel/texttosql/internal/cache"
	"github.com/hetulpatel/texttosql/internal/config"
	"github.com/hetulpatel/texttosql/internal/kafka"
	"github.com/hetulpatel/texttosql/internal/llm"
	"github.com/hetulpatel/texttosql/internal/logging"
	"github.com/hetulpatel/texttosql/internal/shell"
	"github.com/hetulpatel/texttosql/internal/sqlguard"
	"github.com/hetulpatel/texttosql/internal/storage/sqlite"
	"github.com/hetulpatel/texttosql/internal/translator"
)

// Service builds the question service from config. The returned cleanup
// closes the optional cache and audit writer.
func Service(cfg config.Config) (*shell.Service, func(), error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, nil, err
	}
	llmClient, err := llm.New(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Timeout:     cfg.LLM.Timeout,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, nil, err
	}
	style, err := translator.ParseStyle(cfg.LLM.PromptStyle)
	if err != nil {
		return nil, nil, err
	}
	tr, err := translator.New(translator.Config{Completer: llmClient, Style: style})
	if err != nil {
		return nil, nil, err
	}

	svcCfg := shell.Config{
		Translator:     tr,
		Executor:       sqlite.Executor{Path: cfg.SQLite.Path, Options: sqlite.Options{ReadOnly: cfg.SQLite.ReadOnly}},
		CacheNamespace: fmt.Sprintf("%s:%s", cfg.LLM.Model, style),
	}
	if cfg.SQLite.ReadOnly {
		svcCfg.Guard = sqlguard.CheckReadOnly
	}

	var closers []func() error
	if cfg.Redis.Addr != "" {
		c, err := cache.NewRedisTranslationCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL, "nl2sql")
		if err != nil {
			return nil, nil, err
		}
		svcCfg.Cache = c
		closers = append(closers, c.Close)
		logging.Infof("[bootstrap] translation cache enabled at %s", cfg.Redis.Addr)
	}
	if len(cfg.Audit.Brokers) > 0 {
		w := kafka.NewWriter(cfg.Audit.Brokers, cfg.Audit.Topic)
		svcCfg.Audit = w
		closers = append(closers, w.Close)
		logging.Infof("[bootstrap] query audit publishing to %s", cfg.Audit.Topic)
	}

	svc, err := shell.NewService(svcCfg)
	if err != nil {
		closeAll(closers)
		return nil, nil, err
	}
	logging.Infof("[bootstrap] model=%s prompt=%s db=%s read_only=%t", llmClient.Model(), style, cfg.SQLite.Path, cfg.SQLite.ReadOnly)
	return svc, func() { closeAll(closers) }, nil
}

func closeAll(closers []func() error) {
	for _, c := range closers {
		if err := c(); err != nil {
			logging.Errorf("[bootstrap] close: %v", err)
		}
	}
}
