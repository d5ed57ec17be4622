package barasa

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLemma returns the lookup form of a lemma: surrounding space
// trimmed and Unicode NFC composition applied, so that "é" typed as
// e + U+0301 finds the precomposed entry.
func NormalizeLemma(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
