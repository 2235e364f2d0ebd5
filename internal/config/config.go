package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL    = "https://api.groq.com/openai/v1"
	defaultModel      = "llama3-8b-8192"
	defaultSQLitePath = "student.db"
	defaultHTTPAddr   = ":8501"
	defaultAuditTopic = "texttosql.queries"
)

// Config is everything the commands read from the environment.
type Config struct {
	LLM      LLMConfig
	SQLite   SQLiteConfig
	HTTPAddr string
	Redis    RedisConfig
	Audit    AuditConfig
}

type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	PromptStyle string
}

type SQLiteConfig struct {
	Path     string
	ReadOnly bool
}

// RedisConfig enables the translation cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// AuditConfig enables the query audit stream when Brokers is non-empty.
type AuditConfig struct {
	Brokers     []string
	Topic       string
	Group       string
	Concurrency int
	LogPath     string
}

// Lookup reads a single variable; os.LookupEnv satisfies it.
type Lookup func(key string) (string, bool)

// Load reads a .env file when present and builds the config from the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds the config from an arbitrary variable source.
func FromLookup(lookup Lookup) (Config, error) {
	env := envReader{lookup: lookup}
	cfg := Config{
		LLM: LLMConfig{
			APIKey:      env.String("GROQ_API_KEY", ""),
			BaseURL:     env.String("LLM_BASE_URL", defaultBaseURL),
			Model:       env.String("LLM_MODEL", defaultModel),
			Timeout:     time.Duration(env.Int("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
			MaxTokens:   env.Int("LLM_MAX_TOKENS", 512),
			PromptStyle: strings.ToLower(env.String("PROMPT_STYLE", "flat")),
		},
		SQLite: SQLiteConfig{
			Path:     env.String("SQLITE_PATH", defaultSQLitePath),
			ReadOnly: env.Bool("SQL_READ_ONLY", true),
		},
		HTTPAddr: env.String("HTTP_ADDR", defaultHTTPAddr),
		Redis: RedisConfig{
			Addr:     env.String("REDIS_ADDR", ""),
			Password: env.String("REDIS_PASSWORD", ""),
			DB:       env.Int("REDIS_DB", 0),
			TTL:      time.Duration(env.Int("TRANSLATION_CACHE_TTL_HOURS", 24)) * time.Hour,
		},
		Audit: AuditConfig{
			Brokers:     splitList(env.String("KAFKA_BROKERS", "")),
			Topic:       env.String("QUERY_AUDIT_TOPIC", defaultAuditTopic),
			Group:       env.String("AUDIT_WORKER_GROUP", "audit-worker"),
			Concurrency: env.Int("AUDIT_WORKER_CONCURRENCY", 1),
			LogPath:     env.String("AUDIT_LOG_PATH", "query_audit.log"),
		},
	}
	if env.err != nil {
		return Config{}, env.err
	}
	switch cfg.LLM.PromptStyle {
	case "flat", "schema":
	default:
		return Config{}, fmt.Errorf("config: PROMPT_STYLE must be flat or schema, got %q", cfg.LLM.PromptStyle)
	}
	return cfg, nil
}

// RequireAPIKey fails when the model credential is missing.
func (c Config) RequireAPIKey() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return fmt.Errorf("config: GROQ_API_KEY is not set")
	}
	return nil
}

type envReader struct {
	lookup Lookup
	err    error
}

func (r *envReader) raw(key string) (string, bool) {
	val, ok := r.lookup(key)
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, val != ""
}

func (r *envReader) String(key, def string) string {
	if val, ok := r.raw(key); ok {
		return val
	}
	return def
}

func (r *envReader) Int(key string, def int) int {
	val, ok := r.raw(key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		r.fail(fmt.Errorf("config: %s: %w", key, err))
		return def
	}
	return parsed
}

func (r *envReader) Bool(key string, def bool) bool {
	val, ok := r.raw(key)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		r.fail(fmt.Errorf("config: %s: %w", key, err))
		return def
	}
	return parsed
}

func (r *envReader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
