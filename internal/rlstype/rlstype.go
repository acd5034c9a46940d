// Package rlstype infers a release's type (Album, EP, Single, ...) from its
// title, the type a source claims and the shape of its track list.
//
// The precedence ladder is ordered business logic: title markers beat
// explicit source types, which beat track-count heuristics.
package rlstype

import (
	"regexp"
	"strings"

	"github.com/llehouerou/coho/internal/meta"
)

var (
	epRe          = regexp.MustCompile(`(?i)\bE\.?P\.?\b`)
	singleRe      = regexp.MustCompile(`(?i)-? *Single$`)
	soundtrackRe  = regexp.MustCompile(`(?i)original.*soundtrack`)
	parentheticRe = regexp.MustCompile(`\s*\(.*?\)`)
	remixRe       = regexp.MustCompile(`(?i)(mix|remix)`)
)

// Determine classifies the release and returns the (possibly stripped)
// title together with the chosen type. It is a pure function over the
// record; callers decide when to apply the result.
func Determine(r *meta.Release) (title, rlsType string) {
	tracks := r.Tracks.Flatten()
	numTracks := len(tracks)

	baseTitles := make(map[string]struct{})
	for _, t := range tracks {
		baseTitles[stripBaseTitle(t.Title)] = struct{}{}
	}
	mainArtists := make(map[string]struct{})
	for _, a := range r.Artists {
		if a.Role == meta.RoleMain {
			mainArtists[a.Name] = struct{}{}
		}
	}

	title = r.Title
	srcType := strings.ToLower(r.ReleaseType)

	// Title markers win over everything, including explicit source types.
	if epRe.MatchString(title) {
		return strings.TrimSpace(epRe.ReplaceAllString(title, "")), "EP"
	}
	if singleRe.MatchString(title) {
		return strings.TrimSpace(singleRe.ReplaceAllString(title, "")), "Single"
	}
	if soundtrackRe.MatchString(title) {
		return title, "Soundtrack"
	}

	// Explicit source-provided types.
	if srcType == "soundtrack" {
		return title, "Soundtrack"
	}
	if srcType == "compilation" && len(mainArtists) <= 2 {
		return title, "Anthology"
	}

	// Track-shape inference.
	if numTracks <= 3 || len(baseTitles) <= 2 {
		return title, "Single"
	}
	if numTracks <= 7 && (r.ReleaseType == "" || r.ReleaseType == "EP") {
		return title, "EP"
	}

	// Some kind of album from here on.
	remixCount := 0
	for _, t := range tracks {
		if remixRe.MatchString(t.Title) {
			remixCount++
		}
	}
	if numTracks > 0 && float64(remixCount)/float64(numTracks) >= 0.5 {
		return title, "Remix"
	}
	if srcType != "" && srcType != "album" {
		return title, r.ReleaseType
	}
	if len(mainArtists) >= 6 {
		return title, "Compilation"
	}
	if strings.Contains(strings.ToLower(title), "live") {
		return title, "Live album"
	}
	return title, "Album"
}

// stripBaseTitle drops parenthetical suffixes so "Foo (Radio Edit)" and
// "Foo (Extended Mix)" count as one distinct title.
func stripBaseTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(parentheticRe.ReplaceAllString(title, "")))
}
