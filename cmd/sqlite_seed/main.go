package main

import (
	"context"
	"fmt"

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
	ctx := context.Background()

	if err := sqlite.Initialize(ctx, cfg.SQLite.Path); err != nil {
		logging.Fatalf("initialize: %v", err)
	}
	logging.Infof("seeded %d courses and %d students into %s", len(sqlite.SeedCourses), len(sqlite.SeedStudents), cfg.SQLite.Path)

	store, err := sqlite.OpenWithOptions(cfg.SQLite.Path, sqlite.Options{ReadOnly: true})
	if err != nil {
		logging.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()

	roster, err := store.StudentRoster(ctx)
	if err != nil {
		logging.Fatalf("list students: %v", err)
	}
	fmt.Println("Students:")
	for _, s := range roster {
		fmt.Printf("(%d, '%s', '%s', '%s', %d)\n", s.StudentID, s.Name, s.CourseName, s.Section, s.Marks)
	}

	courses, err := store.Courses(ctx)
	if err != nil {
		logging.Fatalf("list courses: %v", err)
	}
	fmt.Println("\nCourses:")
	for _, c := range courses {
		fmt.Printf("(%d, '%s', %d)\n", c.ID, c.Name, c.Credits)
	}
}
