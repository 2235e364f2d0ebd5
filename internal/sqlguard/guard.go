package sqlguard

import (
	"errors"
	"fmt"
	"io"
	"strings"

	sqlparser "github.com/rqlite/sql"
)

// ErrNotReadOnly marks text rejected by CheckReadOnly.
var ErrNotReadOnly = errors.New("sqlguard: statement is not read-only")

// CheckReadOnly accepts exactly one SELECT statement, which covers the
// WITH ... SELECT and VALUES forms. Text the SQLite grammar cannot parse is
// rejected. One trailing semicolon is allowed.
func CheckReadOnly(sqlText string) error {
	text, err := stripComments(sqlText)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: empty statement", ErrNotReadOnly)
	}

	p := sqlparser.NewParser(strings.NewReader(text))
	stmt, err := p.ParseStatement()
	if err != nil {
		return fmt.Errorf("%w: parse: %v", ErrNotReadOnly, err)
	}
	if _, ok := stmt.(*sqlparser.SelectStatement); !ok {
		return fmt.Errorf("%w: %T", ErrNotReadOnly, stmt)
	}

	next, err := p.ParseStatement()
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("%w: parse: %v", ErrNotReadOnly, err)
	default:
		return fmt.Errorf("%w: trailing %T", ErrNotReadOnly, next)
	}
}

// stripComments blanks out -- and /* */ comments, leaving quoted text as is.
func stripComments(in string) (string, error) {
	var b strings.Builder
	b.Grow(len(in))
	for i := 0; i < len(in); i++ {
		c := in[i]
		switch {
		case c == '-' && i+1 < len(in) && in[i+1] == '-':
			for i < len(in) && in[i] != '\n' {
				i++
			}
			b.WriteByte(' ')
		case c == '/' && i+1 < len(in) && in[i+1] == '*':
			end := strings.Index(in[i+2:], "*/")
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated comment", ErrNotReadOnly)
			}
			i += end + 3
			b.WriteByte(' ')
		case c == '\'' || c == '"' || c == '`' || c == '[':
			closer := c
			if c == '[' {
				closer = ']'
			}
			j := i + 1
			for j < len(in) && in[j] != closer {
				j++
			}
			if j >= len(in) {
				return "", fmt.Errorf("%w: unterminated quote", ErrNotReadOnly)
			}
			b.WriteString(in[i : j+1])
			i = j
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
