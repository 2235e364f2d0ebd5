package sqlite

import (
	"context"
	"fmt"
)

// Course is a row of the COURSE table.
type Course struct {
	ID      int64
	Name    string
	Credits int
}

// Student is a row of the STUDENT table.
type Student struct {
	ID       int64
	Name     string
	CourseID int64
	Section  string
	Marks    int
}

// RosterEntry is a student joined with the name of their course.
type RosterEntry struct {
	StudentID  int64
	Name       string
	CourseName string
	Section    string
	Marks      int
}

// Seed courses are inserted in this order, so a fresh table assigns ids 1..5.
var SeedCourses = []Course{
	{Name: "Data Science", Credits: 4},
	{Name: "DevOps", Credits: 3},
	{Name: "Machine Learning", Credits: 4},
	{Name: "Cybersecurity", Credits: 3},
	{Name: "Artificial Intelligence", Credits: 4},
}

var SeedStudents = []Student{
	{Name: "Alice Johnson", CourseID: 1, Section: "A", Marks: 92},
	{Name: "Robert Smith", CourseID: 1, Section: "B", Marks: 85},
	{Name: "Evelyn Martinez", CourseID: 2, Section: "A", Marks: 76},
	{Name: "Michael Brown", CourseID: 3, Section: "A", Marks: 88},
	{Name: "Sophia Wilson", CourseID: 4, Section: "B", Marks: 67},
	{Name: "David Lee", CourseID: 5, Section: "A", Marks: 91},
	{Name: "Olivia Garcia", CourseID: 1, Section: "B", Marks: 95},
	{Name: "James Anderson", CourseID: 3, Section: "A", Marks: 72},
}

// Seed inserts the fixed courses and students in one transaction. It does
// not check for existing rows: every call appends another copy.
func (s *Store) Seed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	courseStmt, err := tx.PrepareContext(ctx, `INSERT INTO COURSE (COURSE_NAME, CREDITS) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare course insert: %w", err)
	}
	defer courseStmt.Close()
	for _, c := range SeedCourses {
		if _, err := courseStmt.ExecContext(ctx, c.Name, c.Credits); err != nil {
			return fmt.Errorf("insert course %s: %w", c.Name, err)
		}
	}

	studentStmt, err := tx.PrepareContext(ctx, `INSERT INTO STUDENT (NAME, COURSE_ID, SECTION, MARKS) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare student insert: %w", err)
	}
	defer studentStmt.Close()
	for _, st := range SeedStudents {
		if _, err := studentStmt.ExecContext(ctx, st.Name, st.CourseID, st.Section, st.Marks); err != nil {
			return fmt.Errorf("insert student %s: %w", st.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Initialize creates the tables and seeds them, closing the database before returning.
func Initialize(ctx context.Context, path string) error {
	store, err := Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.CreateTables(ctx); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	if err := store.Seed(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

// StudentRoster lists every student joined with their course.
func (s *Store) StudentRoster(ctx context.Context) ([]RosterEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT S.STUDENT_ID, S.NAME, C.COURSE_NAME, S.SECTION, S.MARKS
FROM STUDENT S
JOIN COURSE C ON S.COURSE_ID = C.COURSE_ID
ORDER BY S.STUDENT_ID`)
	if err != nil {
		return nil, fmt.Errorf("select roster: %w", err)
	}
	defer rows.Close()

	var out []RosterEntry
	for rows.Next() {
		var e RosterEntry
		if err := rows.Scan(&e.StudentID, &e.Name, &e.CourseName, &e.Section, &e.Marks); err != nil {
			return nil, fmt.Errorf("scan roster: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Courses lists the COURSE table by id.
func (s *Store) Courses(ctx context.Context) ([]Course, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT COURSE_ID, COURSE_NAME, CREDITS FROM COURSE ORDER BY COURSE_ID`)
	if err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Credits); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
