// Package combine folds scraped metadata records from multiple sources into
// one consistent release description.
//
// Records are walked in source-preference order. The first record seeds the
// accumulator; every later record fills missing fields, merges track lists
// and accumulates genres, comments and URLs. The accumulator is scoped to
// one Metadata call; nothing is shared across calls.
package combine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/coho/internal/artists"
	"github.com/llehouerou/coho/internal/genres"
	"github.com/llehouerou/coho/internal/meta"
	"github.com/llehouerou/coho/internal/sources"
)

// ErrNoMetadata is returned when there is neither a base record nor any
// scraped record to combine. Fatal for the release: there is nothing to
// upload.
var ErrNoMetadata = errors.New("no metadata provided to combine")

// ErrTrackCombine marks a track-count mismatch between the accumulator and
// an incoming record. The orchestrator drops that record's track
// contribution and keeps its other fields.
var ErrTrackCombine = errors.New("track combine failed")

const commentSeparator = "\n\n--------------------------------\n\n"

// Metadata combines scraped records into a single release. base may be nil
// (the first record in preference order seeds it) or a record built from
// existing file tags. sourceURL, when it resolves to a known source, moves
// that source to the front of the preference order.
func Metadata(records []sources.Record, base *meta.Release, sourceURL string) (*meta.Release, error) {
	bySource := make(map[string][]*meta.Release)
	var extraOrder []string
	for _, rec := range records {
		if _, known := bySource[rec.Source]; !known && !sources.IsPreferred(rec.Source) {
			extraOrder = append(extraOrder, rec.Source)
		}
		bySource[rec.Source] = append(bySource[rec.Source], rec.Release)
	}

	order := sources.PreferenceOrder(sources.FromURL(sourceURL))
	order = append(order, extraOrder...)

	fromPreferred := true
	for _, name := range order {
		for _, md := range bySource[name] {
			if base == nil {
				base = md
				fromPreferred = false
				continue
			}
			fold(base, md, fromPreferred)
			fromPreferred = false
		}
		for _, md := range bySource[name] {
			if md.URL == "" || sources.FromURL(md.URL) == "" || base == nil {
				continue
			}
			if !containsString(base.URLs, md.URL) {
				base.URLs = append(base.URLs, md.URL)
			}
		}
	}

	if base == nil {
		return nil, ErrNoMetadata
	}

	base.URL = ""
	base.Artists = artists.Generate(base.Tracks)
	base.Genres = genres.Standardize(base.Genres)
	base.Label = artists.ResolveLabel(base.Label, base.Artists)
	base.Tracks.AssignTotals()
	return base, nil
}

// fold merges one record into the accumulator, field by field.
func fold(base, md *meta.Release, fromPreferred bool) {
	base.Genres = append(base.Genres, md.Genres...)

	// A track-count mismatch drops this record's tracks only; every other
	// field below still merges.
	_ = Tracks(base.Tracks, md.Tracks, fromPreferred)

	// Fill label and catalog number together when the incoming label
	// overlaps an existing partial one, unless the base is an untrusted WEB
	// rip being patched by a non-preferred source.
	if (base.CatNo == "" || base.Label == "") &&
		md.Label != "" && md.CatNo != "" &&
		(base.Label == "" || labelWordOverlap(base.Label, md.Label)) &&
		(base.Source != "WEB" || fromPreferred) {
		base.Label = md.Label
		base.CatNo = md.CatNo
	}
	if base.Label == "" && md.Label != "" {
		base.Label = md.Label
		if base.CatNo == "" && md.CatNo != "" {
			base.CatNo = md.CatNo
		}
	}

	if md.Comment != "" {
		if base.Comment == "" {
			base.Comment = md.Comment
		} else {
			base.Comment += commentSeparator + md.Comment
		}
	}

	if base.Cover == "" {
		base.Cover = md.Cover
	}
	if base.EditionTitle == "" {
		base.EditionTitle = md.EditionTitle
	}
	if base.Year == 0 {
		base.Year = md.Year
	}
	if base.GroupYear == 0 || (md.GroupYear != 0 && md.GroupYear < base.GroupYear) {
		base.GroupYear = md.GroupYear
	}
	if base.Date == "" {
		// A date is authoritative for the years too.
		base.Date = md.Date
		base.Year = md.Year
		base.GroupYear = md.GroupYear
	}
	if base.ReleaseType == "" || base.ReleaseType == "Album" {
		base.ReleaseType = md.ReleaseType
	}
	if base.UPC == "" {
		base.UPC = md.UPC
	}
}

// labelWordOverlap reports whether any word of the partial base label
// appears in the incoming label.
func labelWordOverlap(baseLabel, mdLabel string) bool {
	for _, w := range strings.Fields(baseLabel) {
		if strings.Contains(mdLabel, w) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// trackCombineError builds the positional-mismatch error for a disc/track.
func trackCombineError(disc, num string) error {
	return fmt.Errorf("disc %s track %s does not exist in base: %w", disc, num, ErrTrackCombine)
}
