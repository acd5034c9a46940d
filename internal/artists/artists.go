// Package artists deduplicates and repairs artist credits across the tracks
// of one release.
//
// Scrapers disagree on casing, accents and name splitting: one source may
// credit "Leslie Odom, Jr." where another produced the fragments
// "Leslie Odom" and "Jr.". This package collapses spelling variants onto one
// canonical form per logical artist and detects fragmented names by
// comparing concatenations of reduced name keys.
package artists

import (
	"sort"
	"strings"

	"github.com/llehouerou/coho/internal/meta"
	"github.com/llehouerou/coho/internal/strutil"
)

// poolKey is the case- and accent-insensitive identity key for a name.
func poolKey(name string) string {
	return strutil.StripAccents(strings.ToLower(name))
}

// namePool maps every artist name key found in tracks to the display form
// chosen for it. When several spellings share a key the least-uppercase one
// wins.
func namePool(tracks *meta.TrackMap) map[string]string {
	pool := make(map[string]string)
	for _, t := range tracks.Flatten() {
		for _, a := range t.Artists {
			key := poolKey(a.Name)
			if existing, ok := pool[key]; !ok {
				pool[key] = a.Name
			} else if existing != a.Name {
				pool[key] = strutil.LessUppers(existing, a.Name)
			}
		}
	}
	return pool
}

// Generate collects the release-level artist list from the artists of every
// track, canonicalizing spellings through the shared name pool, then runs
// the whole set through fragment repair. Track artist lists are rewritten
// in place with the same canonical forms and repairs.
func Generate(tracks *meta.TrackMap) []meta.Artist {
	pool := namePool(tracks)
	var artists []meta.Artist
	for _, t := range tracks.Flatten() {
		for _, a := range t.Artists {
			name := pool[poolKey(a.Name)]
			candidate := meta.Artist{Name: name, Role: a.Role}
			if !contains(artists, candidate) {
				artists = append(artists, candidate)
			}
		}
	}
	return Filter(artists, tracks)
}

// Filter repairs badly split artists in the release-level list and, when
// tracks are given, applies the same replacement rules to every track's
// artist list so the repair is consistent release-wide.
func Filter(list []meta.Artist, tracks *meta.TrackMap) []meta.Artist {
	rules := replacementRules(list)
	list = applyRules(list, rules)
	if tracks == nil {
		return list
	}
	pool := namePool(tracks)
	for _, t := range tracks.Flatten() {
		var deduped []meta.Artist
		seen := make(map[string]struct{})
		for _, a := range t.Artists {
			key := poolKey(a.Name)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			deduped = append(deduped, meta.Artist{Name: pool[key], Role: a.Role})
		}
		t.Artists = applyRules(deduped, rules)
	}
	return list
}

// rule records that the two fragment names, when present together, stand
// for the combined artist.
type rule struct {
	fragments   []string
	replacement string
}

// replacementRules finds fragment pairs whose concatenated keys equal the
// key of another artist. Names are walked in list order: each name is
// paired with every earlier name (nearest first), concatenated as
// earlier+current, and compared against every artist at or beyond the
// current position. Fragments of a split name keep their original order in
// scraped lists, which is what makes the earlier+current concatenation the
// right one.
func replacementRules(list []meta.Artist) []rule {
	type entry struct {
		key  string
		name string
	}
	pool := make([]entry, 0, len(list))
	for _, a := range list {
		pool = append(pool, entry{key: strutil.AlnumKey(a.Name), name: a.Name})
	}

	var rules []rule
	for i, pri := range pool {
		for j := i - 1; j >= 0; j-- {
			other := pool[j]
			combined := other.key + pri.key
			for _, candidate := range pool[i:] {
				if combined == candidate.key {
					rules = append(rules, rule{
						fragments:   []string{pri.name, other.name},
						replacement: candidate.name,
					})
				}
			}
		}
	}
	return rules
}

// applyRules removes matched fragments per role and makes sure each rule's
// combined artist is present for that role. Roles are processed separately
// so each role ends up with its own copy of the repair.
func applyRules(list []meta.Artist, rules []rule) []meta.Artist {
	var roleOrder []meta.Role
	byRole := make(map[meta.Role][]string)
	for _, a := range list {
		if _, ok := byRole[a.Role]; !ok {
			roleOrder = append(roleOrder, a.Role)
		}
		byRole[a.Role] = append(byRole[a.Role], a.Name)
	}

	for _, role := range roleOrder {
		names := append([]string(nil), byRole[role]...)
		sort.SliceStable(names, func(i, j int) bool {
			return len(names[i]) < len(names[j])
		})
		for _, r := range rules {
			found := false
			for _, name := range names {
				if !isFragment(name, r.fragments) || !contains(list, meta.Artist{Name: name, Role: role}) {
					continue
				}
				list = remove(list, meta.Artist{Name: name, Role: role})
				if name == r.replacement {
					found = true
				}
			}
			if !found && !contains(list, meta.Artist{Name: r.replacement, Role: role}) {
				list = append(list, meta.Artist{Name: r.replacement, Role: role})
			}
		}
	}
	return list
}

func isFragment(name string, fragments []string) bool {
	for _, f := range fragments {
		if name == f {
			return true
		}
	}
	return false
}

// CheckFragments removes any artist whose name is a strict substring of
// another co-present artist's name. This is the cheap local collapse used
// during track combining; the global repair above handles the harder
// concatenation cases.
func CheckFragments(list []meta.Artist) []meta.Artist {
	names := make(map[string]struct{}, len(list))
	for _, a := range list {
		names[a.Name] = struct{}{}
	}
	out := append([]meta.Artist(nil), list...)
	for _, a := range list {
		for name := range names {
			if a.Name != name && strings.Contains(name, a.Name) &&
				len([]rune(a.Name)) > 1 && contains(out, a) {
				out = remove(out, a)
			}
		}
	}
	return out
}

func contains(list []meta.Artist, a meta.Artist) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

// remove deletes the first occurrence of a from list.
func remove(list []meta.Artist, a meta.Artist) []meta.Artist {
	for i, x := range list {
		if x == a {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
