package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName folds a free-text ingredient query: NFKC, lowercase,
// trimmed, inner whitespace collapsed to single spaces.
func NormalizeName(s string) string {
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizeLabel is NormalizeName for classifier vocabulary, where
// "pumpkin_seeds" and "pumpkin-seeds" both mean "pumpkin seeds".
func NormalizeLabel(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return NormalizeName(s)
}
