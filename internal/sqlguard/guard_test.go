package sqlguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckReadOnlyAccepts(t *testing.T) {
	accepted := []string{
		"SELECT COUNT(*) FROM STUDENT",
		"SELECT COUNT(*) FROM STUDENT;",
		"select S.NAME FROM STUDENT S JOIN COURSE C ON S.COURSE_ID=C.COURSE_ID WHERE C.COURSE_NAME='Data Science'",
		"WITH top AS (SELECT * FROM STUDENT WHERE MARKS > 90) SELECT NAME FROM top",
		"SELECT * FROM STUDENT WHERE NAME = 'DROP TABLE x; DELETE'",
		"SELECT UPPER(NAME) FROM STUDENT ORDER BY MARKS DESC",
		"-- list everyone\nSELECT NAME FROM STUDENT /* all */",
		"VALUES (1, 2)",
		`SELECT "NAME" FROM STUDENT WHERE SECTION = 'it''s'`,
	}
	for _, q := range accepted {
		assert.NoError(t, CheckReadOnly(q), q)
	}
}

func TestCheckReadOnlyRejects(t *testing.T) {
	rejected := []string{
		"",
		"   ;  ",
		"DELETE FROM STUDENT",
		"DROP TABLE STUDENT",
		"INSERT INTO COURSE (COURSE_NAME, CREDITS) VALUES ('x', 1)",
		"UPDATE STUDENT SET MARKS = 100",
		"SELECT 1; DROP TABLE STUDENT",
		"WITH x AS (SELECT 1) DELETE FROM STUDENT",
		"PRAGMA table_info(STUDENT)",
		"ATTACH DATABASE 'other.db' AS o",
		"SELECT * FROM STUDENT WHERE NAME = 'open",
		"SELECT 1 /* never closed",
		"()",
		"SELECT 1; SELECT 2",
		"EXPLAIN SELECT * FROM STUDENT",
		"SELEC NAME FROM STUDENT",
	}
	for _, q := range rejected {
		assert.ErrorIs(t, CheckReadOnly(q), ErrNotReadOnly, q)
	}
}
