package shell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hetulpatel/texttosql/internal/cache"
	"github.com/hetulpatel/texttosql/internal/hashutil"
	"github.com/hetulpatel/texttosql/internal/logging"
	"github.com/hetulpatel/texttosql/internal/models"
	"github.com/hetulpatel/texttosql/internal/queue"
	"github.com/hetulpatel/texttosql/internal/storage/sqlite"
)

const (
	StageTranslate = "translate"
	StageGuard     = "guard"
	StageExecute   = "execute"

	msgBlank   = "Please enter a valid query."
	msgSuccess = "SQL Query Successfully Generated!"
	msgNoData  = "No data found for the given query."
)

// Translator turns a question into SQL text.
type Translator interface {
	Translate(ctx context.Context, question string) (string, error)
}

// Executor runs SQL text and returns its rows.
type Executor interface {
	Execute(ctx context.Context, sqlText string) (sqlite.Result, error)
}

// Guard vets SQL text before execution; nil allows everything.
type Guard func(sqlText string) error

// Config wires the service. Cache and Audit are optional.
type Config struct {
	Translator     Translator
	Executor       Executor
	Guard          Guard
	Cache          cache.TranslationCache
	CacheNamespace string
	Audit          queue.MessageWriter
	Now            func() time.Time
}

// Outcome is what one submit renders. A zero Status means nothing was submitted.
type Outcome struct {
	Question string
	SQL      string
	Status   models.QueryStatus
	Stage    string
	Message  string
	Columns  []string
	Rows     [][]any
	Cached   bool
	Err      error
}

// Service runs the question -> SQL -> rows round trip.
type Service struct {
	translator Translator
	executor   Executor
	guard      Guard
	cache      cache.TranslationCache
	namespace  string
	audit      queue.MessageWriter
	now        func() time.Time
}

func NewService(cfg Config) (*Service, error) {
	if cfg.Translator == nil {
		return nil, fmt.Errorf("shell: translator is required")
	}
	if cfg.Executor == nil {
		return nil, fmt.Errorf("shell: executor is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		translator: cfg.Translator,
		executor:   cfg.Executor,
		guard:      cfg.Guard,
		cache:      cfg.Cache,
		namespace:  cfg.CacheNamespace,
		audit:      cfg.Audit,
		now:        now,
	}, nil
}

// Ask handles one submitted question. Failures are reported on the
// outcome, never returned.
func (s *Service) Ask(ctx context.Context, question string) Outcome {
	started := s.now()
	out := s.ask(ctx, question)
	s.record(ctx, started, out)
	return out
}

func (s *Service) ask(ctx context.Context, question string) Outcome {
	out := Outcome{Question: question}
	if strings.TrimSpace(question) == "" {
		out.Status = models.QueryStatusWarning
		out.Message = msgBlank
		return out
	}

	sqlText, cached, err := s.translate(ctx, question)
	if err != nil {
		return s.fail(out, StageTranslate, err)
	}
	out.SQL = sqlText
	out.Cached = cached

	if s.guard != nil {
		if err := s.guard(sqlText); err != nil {
			return s.fail(out, StageGuard, err)
		}
	}

	execStarted := s.now()
	res, err := s.executor.Execute(ctx, sqlText)
	observeStage(StageExecute, s.now().Sub(execStarted))
	if err != nil {
		return s.fail(out, StageExecute, err)
	}

	out.Columns = res.Columns
	out.Rows = res.Rows
	if len(res.Rows) == 0 {
		out.Status = models.QueryStatusEmpty
		out.Message = msgNoData
		return out
	}
	out.Status = models.QueryStatusSuccess
	out.Message = msgSuccess
	return out
}

func (s *Service) translate(ctx context.Context, question string) (string, bool, error) {
	key := hashutil.QuestionKey(s.namespace, question)
	if s.cache != nil {
		sqlText, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logging.Warnf("[shell] translation cache get: %v", err)
		} else if ok {
			return sqlText, true, nil
		}
	}

	started := s.now()
	sqlText, err := s.translator.Translate(ctx, question)
	observeStage(StageTranslate, s.now().Sub(started))
	if err != nil {
		return "", false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, sqlText); err != nil {
			logging.Warnf("[shell] translation cache set: %v", err)
		}
	}
	return sqlText, false, nil
}

func (s *Service) fail(out Outcome, stage string, err error) Outcome {
	out.Status = models.QueryStatusError
	out.Stage = stage
	out.Err = err
	out.Message = fmt.Sprintf("An error occurred: %v", err)
	return out
}

func (s *Service) record(ctx context.Context, started time.Time, out Outcome) {
	elapsed := s.now().Sub(started)
	countOutcome(out)

	switch out.Status {
	case models.QueryStatusError:
		logging.Errorf("[shell] question=%q stage=%s sql=%q err=%v", out.Question, out.Stage, out.SQL, out.Err)
	case models.QueryStatusWarning:
		logging.Debugf("[shell] blank question rejected")
	default:
		logging.Infof("[shell] question=%q sql=%q rows=%d cached=%t took=%s", out.Question, out.SQL, len(out.Rows), out.Cached, elapsed)
	}

	if s.audit == nil {
		return
	}
	ev := models.NewQueryEvent(out.Question, started)
	ev.SQL = out.SQL
	ev.Status = out.Status
	ev.Stage = out.Stage
	ev.RowCount = len(out.Rows)
	ev.Cached = out.Cached
	ev.DurationMS = elapsed.Milliseconds()
	if out.Err != nil {
		ev.Error = out.Err.Error()
	}
	if err := queue.PublishQueryEvent(ctx, s.audit, ev); err != nil {
		logging.Warnf("[shell] publish audit event %s: %v", ev.ID, err)
	}
}
