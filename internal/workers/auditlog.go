package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/hetulpatel/texttosql/internal/models"
)

// AuditLogHandler appends each event as one JSON line to path.
func AuditLogHandler(path string) Handler {
	var mu sync.Mutex
	return func(_ context.Context, event *models.QueryEvent) error {
		if event == nil {
			return nil
		}
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal audit entry: %w", err)
		}

		mu.Lock()
		defer mu.Unlock()
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open audit log: %w", err)
		}
		defer f.Close()
		if _, err := f.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write audit log: %w", err)
		}
		return nil
	}
}
