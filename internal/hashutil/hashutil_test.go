package hashutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashStringsSeparatesParts(t *testing.T) {
	assert.NotEqual(t, HashStrings("ab", "c"), HashStrings("a", "bc"))
	assert.Len(t, HashStrings("x"), 64)
}

func TestQuestionKeyNormalizes(t *testing.T) {
	a := QuestionKey("flat", "How many entries of records are present?")
	b := QuestionKey("flat", "  How many entries\tof records  are present?  ")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, QuestionKey("schema", "How many entries of records are present?"))
}

func TestQuestionKeyKeepsCase(t *testing.T) {
	assert.NotEqual(t, QuestionKey("flat", "Students in section 'B'"), QuestionKey("flat", "Students in section 'b'"))
}
