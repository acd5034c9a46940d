// Package genres maps free-text genre strings onto a canonical taxonomy.
//
// Lookups fail open: a genre missing from the whitelist passes through
// verbatim rather than being dropped. A post-filter removes a generic genre
// whenever a combined genre lists it as one of its "/", "&" or "and" parts,
// so {"Bass", "Drum & Bass"} reduces to {"Drum & Bass"}.
package genres

import (
	"regexp"
	"strings"

	"github.com/llehouerou/coho/internal/strutil"
)

var (
	keyRe   = regexp.MustCompile(`[^a-z]`)
	splitRe = regexp.MustCompile(`\s*/\s*|\s*&\s*|\s+and\s+`)
)

// Lookup returns the canonical genres for a free-text genre string, and
// whether the string was found in the whitelist.
func Lookup(genre string) ([]string, bool) {
	key := strings.ToLower(strutil.StripAccents(genre))
	key = strings.ReplaceAll(key, "&", "and")
	key = keyRe.ReplaceAllString(key, "")
	canonical, ok := whitelist[key]
	return canonical, ok
}

// Standardize maps every input genre through the whitelist (unknown genres
// pass through unchanged), deduplicates and drops generic genres that appear
// as a separate token inside a surviving combined genre. The result is in
// first-seen order and the function is idempotent.
func Standardize(input []string) []string {
	var expanded []string
	seen := make(map[string]struct{})
	add := func(g string) {
		if _, ok := seen[g]; ok {
			return
		}
		seen[g] = struct{}{}
		expanded = append(expanded, g)
	}
	for _, g := range input {
		if canonical, ok := Lookup(g); ok {
			for _, c := range canonical {
				add(c)
			}
		} else {
			add(g)
		}
	}

	// Prefer "Drum & Bass" over a bare "Bass" when both are present.
	var filtered []string
	for _, g := range expanded {
		generic := false
		for _, other := range expanded {
			if g != other && isSeparateWordIn(g, other) {
				generic = true
				break
			}
		}
		if !generic {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// isSeparateWordIn reports whether generic appears as a standalone part of
// combined when combined is split on "/", "&" or " and ".
func isSeparateWordIn(generic, combined string) bool {
	generic = strings.ToLower(generic)
	for _, part := range splitRe.Split(strings.ToLower(combined), -1) {
		if part == generic {
			return true
		}
	}
	return false
}

// FixHardcore rewrites a bare "Hardcore" genre to "Hardcore Rock" or
// "Hardcore Dance" based on the families it co-occurs with. When both rock
// and dance families are present the set is ambiguous and left alone.
func FixHardcore(input []string) []string {
	rockFound := false
	danceFound := false
	for _, g := range input {
		l := strings.ToLower(g)
		if strings.Contains(l, "rock") || strings.Contains(l, "metal") {
			rockFound = true
		}
		if strings.Contains(l, "dance") || strings.Contains(l, "electronic") {
			danceFound = true
		}
	}
	if rockFound && danceFound {
		return input
	}

	replacement := "Hardcore Dance"
	if rockFound {
		replacement = "Hardcore Rock"
	}
	out := make([]string, len(input))
	for i, g := range input {
		if strings.EqualFold(g, "Hardcore") {
			out[i] = replacement
		} else {
			out[i] = g
		}
	}
	return out
}
