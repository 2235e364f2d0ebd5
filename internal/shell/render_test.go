package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRow(t *testing.T) {
	assert.Equal(t, "(8,)", FormatRow([]any{int64(8)}))
	assert.Equal(t, "('Alice Johnson',)", FormatRow([]any{"Alice Johnson"}))
	assert.Equal(t, "(1, 'Alice Johnson', 'A', 92)", FormatRow([]any{int64(1), "Alice Johnson", "A", int64(92)}))
	assert.Equal(t, "(None, 95.0, 87.5)", FormatRow([]any{nil, 95.0, 87.5}))
	assert.Equal(t, `("O'Brien", 'raw')`, FormatRow([]any{"O'Brien", []byte("raw")}))
	assert.Equal(t, `('say "it\'s"',)`, FormatRow([]any{`say "it's"`}))
	assert.Equal(t, "()", FormatRow(nil))
}

func TestFormatRowFloats(t *testing.T) {
	assert.Equal(t, "(1e+20, 1.5e+16, 9999999999999998.0)", FormatRow([]any{1e20, 1.5e16, 9999999999999998.0}))
	assert.Equal(t, "(1e-05, 0.0001, 0.0, -2.5)", FormatRow([]any{0.00001, 0.0001, 0.0, -2.5}))
}
