package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const (
	defaultPath = "student.db"
)

// Options tune how the database file is opened.
type Options struct {
	// ReadOnly opens an existing file with query_only so the engine refuses writes.
	ReadOnly bool
}

// Store wraps a SQLite DB connection.
type Store struct {
	path string
	db   *sql.DB
}

// Open creates (if needed) and opens the SQLite database for reading and writing.
func Open(path string) (*Store, error) {
	return OpenWithOptions(path, Options{})
}

// OpenWithOptions opens the SQLite database at path.
func OpenWithOptions(path string, opts Options) (*Store, error) {
	if path == "" {
		path = defaultPath
	}
	if opts.ReadOnly {
		// A read-only open never creates the file or its directory.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	db, err := sql.Open("sqlite", dsn(path, opts))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if !opts.ReadOnly {
		if err := ensureWAL(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("set WAL mode: %w", err)
		}
	}
	return &Store{path: path, db: db}, nil
}

// NewFromDB wraps an already opened handle.
func NewFromDB(path string, db *sql.DB) *Store {
	return &Store{path: path, db: db}
}

func dsn(path string, opts Options) string {
	if !opts.ReadOnly {
		return path
	}
	return "file:" + path + "?_pragma=query_only(1)"
}

func ensureWAL(db *sql.DB) error {
	const (
		maxAttempts = 5
		delay       = 200 * time.Millisecond
	)
	for i := 0; i < maxAttempts; i++ {
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			if strings.Contains(err.Error(), "database is locked") {
				time.Sleep(delay)
				continue
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("database is locked after retries")
}

// Path returns the path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Close closes the DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateTables ensures the COURSE and STUDENT tables exist.
func (s *Store) CreateTables(ctx context.Context) error {
	for _, stmt := range []string{createCourseSQL, createStudentSQL} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// DropTables removes both tables.
func (s *Store) DropTables(ctx context.Context) error {
	for _, stmt := range []string{`DROP TABLE IF EXISTS STUDENT;`, `DROP TABLE IF EXISTS COURSE;`} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// ClearTables deletes every row and resets the AUTOINCREMENT counters.
func (s *Store) ClearTables(ctx context.Context) error {
	stmts := []string{
		`DELETE FROM STUDENT;`,
		`DELETE FROM COURSE;`,
		`DELETE FROM sqlite_sequence WHERE name IN ('STUDENT', 'COURSE');`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

const createCourseSQL = `
CREATE TABLE IF NOT EXISTS COURSE (
	COURSE_ID INTEGER PRIMARY KEY AUTOINCREMENT,
	COURSE_NAME VARCHAR(50) NOT NULL,
	CREDITS INTEGER NOT NULL
);
`

const createStudentSQL = `
CREATE TABLE IF NOT EXISTS STUDENT (
	STUDENT_ID INTEGER PRIMARY KEY AUTOINCREMENT,
	NAME VARCHAR(50) NOT NULL,
	COURSE_ID INTEGER,
	SECTION VARCHAR(25),
	MARKS INT,
	FOREIGN KEY (COURSE_ID) REFERENCES COURSE (COURSE_ID)
);
`
