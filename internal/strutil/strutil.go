// Package strutil provides the string normalization helpers used for
// metadata comparison: accent stripping, comparison keys and casing
// heuristics. Comparisons throughout the combiner are done on stripped
// forms so that sources with different encodings of the same name agree.
package strutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

var (
	punctRe = regexp.MustCompile(`[^\w\s]`)
	spaceRe = regexp.MustCompile(`\s+`)
	alnumRe = regexp.MustCompile(`[^a-z0-9]`)
)

// StripAccents removes diacritics by NFKD-decomposing the string and
// dropping combining marks. Returns the input unchanged if the transform
// fails.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Strip produces the canonical comparison key for a title or name:
// lowercase, punctuation removed, whitespace collapsed. Two strings that
// Strip equal are treated as the same value by the combiner.
func Strip(s string) string {
	s = strings.ToLower(s)
	s = punctRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// AlnumKey reduces a name to its accent-stripped, lowercase, alphanumeric
// characters. This is the key used by artist fragment repair, where even
// spaces must not distinguish two spellings.
func AlnumKey(s string) string {
	return alnumRe.ReplaceAllString(strings.ToLower(StripAccents(s)), "")
}

// LessUppers returns the variant with fewer uppercase letters, preferring
// "Proper Case" forms over SHOUTING-CASE scrapes. Ties keep the first.
func LessUppers(one, two string) string {
	oneCount := countLower(one)
	twoCount := countLower(two)
	if oneCount >= twoCount {
		return one
	}
	return two
}

func countLower(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLower(r) {
			n++
		}
	}
	return n
}
