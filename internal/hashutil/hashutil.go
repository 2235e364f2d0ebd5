package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashStrings returns a SHA256 hash of the provided strings with newline separators.
func HashStrings(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// QuestionKey hashes a question after collapsing whitespace. Case is kept:
// literals in the question end up in case-sensitive SQL comparisons.
func QuestionKey(style, question string) string {
	normalized := strings.Join(strings.Fields(question), " ")
	return HashStrings(style, normalized)
}
