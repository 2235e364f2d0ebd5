package translator

import (
	"fmt"
	"strings"
)

// Style selects which schema description the prompt carries.
type Style string

const (
	// StyleFlat describes a single STUDENT table with NAME, COURSE, SECTION
	// and MARKS. The stored schema is two tables joined on COURSE_ID, so
	// queries written against this description can fail at execution.
	StyleFlat Style = "flat"
	// StyleSchema describes the COURSE and STUDENT tables as stored.
	StyleSchema Style = "schema"
)

const systemPrompt = "You are an expert in converting English questions to SQL query!"

const flatTemplate = `The SQL database has the name STUDENT and has the following columns - NAME, COURSE,
SECTION and MARKS. For example,
Example 1 - How many entries of records are present?,
    the SQL command will be something like this SELECT COUNT(*) FROM STUDENT;
Example 2 - Tell me all the students studying in Data Science COURSE?,
    the SQL command will be something like this SELECT * FROM STUDENT
    where COURSE="Data Science";
Also, the SQL code should not have ` + "```" + ` in the beginning or end and no "sql" word
in the output.
Now convert the following question in English to a valid SQL Query: %s.
No preamble, only valid SQL please.`

const schemaTemplate = `The SQLite database has two tables:
COURSE(COURSE_ID INTEGER PRIMARY KEY, COURSE_NAME TEXT, CREDITS INTEGER) and
STUDENT(STUDENT_ID INTEGER PRIMARY KEY, NAME TEXT, COURSE_ID INTEGER REFERENCES COURSE, SECTION TEXT, MARKS INTEGER).
For example,
Example 1 - How many entries of records are present?,
    the SQL command will be something like this SELECT COUNT(*) FROM STUDENT;
Example 2 - Tell me all the students studying in Data Science COURSE?,
    the SQL command will be something like this SELECT S.NAME FROM STUDENT S
    JOIN COURSE C ON S.COURSE_ID = C.COURSE_ID WHERE C.COURSE_NAME = 'Data Science';
Also, the SQL code should not have ` + "```" + ` in the beginning or end and no "sql" word
in the output.
Now convert the following question in English to a valid SQL Query: %s.
No preamble, only valid SQL please.`

// ParseStyle accepts "flat" or "schema"; empty means flat.
func ParseStyle(raw string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(raw))) {
	case "", StyleFlat:
		return StyleFlat, nil
	case StyleSchema:
		return StyleSchema, nil
	default:
		return "", fmt.Errorf("translator: unknown prompt style %q", raw)
	}
}

// BuildUserPrompt substitutes the question into the template for style.
func BuildUserPrompt(style Style, question string) string {
	tmpl := flatTemplate
	if style == StyleSchema {
		tmpl = schemaTemplate
	}
	return fmt.Sprintf(tmpl, question)
}

// cleanSQL removes a markdown fence or a leading "sql" marker the model
// may add despite the instructions.
func cleanSQL(raw string) string {
	out := strings.TrimSpace(raw)
	if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```")
		out = strings.TrimSuffix(strings.TrimSpace(out), "```")
		out = strings.TrimSpace(out)
	}
	if len(out) > 3 && strings.EqualFold(out[:3], "sql") && isSpace(out[3]) {
		out = strings.TrimSpace(out[3:])
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}
