// Package textnorm canonicalizes Persian document text before chunking.
//
// Normalization folds Persian digits to their ASCII equivalents, unifies the
// accepted yeh and kaf glyph variants to their canonical code points, and
// strips zero-width non-joiners. The partitioner that produces document
// elements is best-effort, so normalization is total: any input yields a
// result and never an error.
package textnorm

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	persianZero = '۰'
	persianNine = '۹'
	arabicYeh   = 'ي'
	farsiYeh    = 'ی'
	arabicKaf   = 'ك'
	keheh       = 'ک'
	zwnj        = '\u200c'
)

var normalizer = transform.Chain(
	runes.Map(foldRune),
	runes.Remove(runes.Predicate(func(r rune) bool { return r == zwnj })),
)

func foldRune(r rune) rune {
	switch {
	case r >= persianZero && r <= persianNine:
		return '0' + (r - persianZero)
	case r == arabicYeh:
		return farsiYeh
	case r == arabicKaf:
		return keheh
	}
	return r
}

// Normalize returns the canonical form of text. Empty input yields an empty
// string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	normalized, _, err := transform.String(normalizer, text)
	if err != nil {
		// The chain cannot fail on UTF-8 input; keep the contract total anyway.
		return text
	}
	return normalized
}
