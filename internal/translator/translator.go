package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hetulpatel/texttosql/internal/logging"
)

// ErrEmptyQuestion is returned for blank or whitespace-only questions.
var ErrEmptyQuestion = errors.New("translator: question is empty")

// Completer is the chat model the translator talks to. *llm.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config controls the translator behavior.
type Config struct {
	Completer Completer
	Style     Style
}

// Translator turns English questions into SQL text via the model.
type Translator struct {
	completer Completer
	style     Style
}

// New creates a translator.
func New(cfg Config) (*Translator, error) {
	if cfg.Completer == nil {
		return nil, fmt.Errorf("translator: completer is required")
	}
	style := cfg.Style
	if style == "" {
		style = StyleFlat
	}
	if style != StyleFlat && style != StyleSchema {
		return nil, fmt.Errorf("translator: unknown prompt style %q", style)
	}
	return &Translator{completer: cfg.Completer, style: style}, nil
}

// Translate returns the model's SQL for question. The text is not checked
// for validity; callers decide what to do with it.
func (t *Translator) Translate(ctx context.Context, question string) (string, error) {
	if t == nil {
		return "", fmt.Errorf("translator: translator is nil")
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	raw, err := t.completer.Complete(ctx, systemPrompt, BuildUserPrompt(t.style, question))
	if err != nil {
		return "", fmt.Errorf("translator: %w", err)
	}
	sql := cleanSQL(raw)
	if sql == "" {
		return "", fmt.Errorf("translator: model returned empty SQL")
	}
	logging.Debugf("[translator] style=%s question=%q sql=%q", t.style, question, sql)
	return sql, nil
}
