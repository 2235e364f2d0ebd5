package sqlite

import (
	"context"
	"fmt"
)

// Result holds the rows of one executed statement in engine order.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Query runs sqlText as given and collects every row. Statements that
// produce no rows (or no columns) yield an empty result.
func (s *Store) Query(ctx context.Context, sqlText string) (Result, error) {
	if s == nil || s.db == nil {
		return Result{}, fmt.Errorf("sqlite store not initialized")
	}
	rows, err := s.db.QueryContext(ctx, sqlText)
	if err != nil {
		return Result{}, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, err
	}
	res := Result{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return Result{}, fmt.Errorf("scan row: %w", err)
		}
		res.Rows = append(res.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Executor runs statements against a database file, one connection per call.
type Executor struct {
	Path    string
	Options Options
}

// Execute opens the database, runs sqlText and closes the connection on every path.
func (e Executor) Execute(ctx context.Context, sqlText string) (Result, error) {
	return Execute(ctx, e.Path, sqlText, e.Options)
}

// Execute is the scoped form of Store.Query.
func Execute(ctx context.Context, path, sqlText string, opts Options) (Result, error) {
	store, err := OpenWithOptions(path, opts)
	if err != nil {
		return Result{}, fmt.Errorf("execute: %w", err)
	}
	defer store.Close()

	res, err := store.Query(ctx, sqlText)
	if err != nil {
		return Result{}, fmt.Errorf("execute: %w", err)
	}
	return res, nil
}
