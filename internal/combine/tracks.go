package combine

import (
	"regexp"
	"strings"

	"github.com/llehouerou/coho/internal/artists"
	"github.com/llehouerou/coho/internal/meta"
	"github.com/llehouerou/coho/internal/strutil"
)

var (
	remixerRe      = regexp.MustCompile(`(?i)\((.*?)\s+(?:Club|Radio|Vocal|Dub|Extended)?\s*(?:Remix|Mix|Edit)\)`)
	remixerSplitRe = regexp.MustCompile(`\s*(?:&|,|/|;|\+)\s*`)
)

// Mix descriptors that name a mix type, not a remixer.
var commonMixTypes = map[string]struct{}{
	"original":     {},
	"extended":     {},
	"radio":        {},
	"club":         {},
	"instrumental": {},
	"acoustic":     {},
	"album":        {},
	"vocal":        {},
	"main":         {},
	"dub":          {},
	"edit":         {},
}

// Tracks merges an incoming record's track list into base, pairing tracks
// positionally: base's tracks in disc/track insertion order against the
// incoming tracks in theirs. Numbers are not matched explicitly because
// sources disagree on numbering schemes.
//
// Returns an error wrapping ErrTrackCombine when the incoming record has
// more tracks than base; base keeps whatever was merged before the
// mismatch, which is why the caller treats the whole contribution as
// suspect and drops only the track merge.
func Tracks(base, incoming *meta.TrackMap, updateTrackNumbers bool) error {
	baseTracks := base.Flatten()
	pos := 0

	var combineErr error
	incoming.Walk(func(disc, num string, track *meta.Track) {
		if combineErr != nil {
			return
		}
		if pos >= len(baseTracks) {
			combineErr = trackCombineError(disc, num)
			return
		}
		btrack := baseTracks[pos]
		pos++

		mergeTitles(btrack, track)
		mergeArtists(btrack, track)

		if track.Explicit {
			btrack.Explicit = true
		}
		if btrack.Format == "" {
			btrack.Format = track.Format
		}
		if btrack.ISRC == "" {
			btrack.ISRC = track.ISRC
		}
		if btrack.ReplayGain == 0 {
			// A replay-gain-bearing source is treated as authoritative for
			// the title as well, not just the gain.
			btrack.ReplayGain = track.ReplayGain
			btrack.Title = track.Title
		}
		if btrack.TrackTotal == 0 {
			btrack.TrackTotal = track.TrackTotal
		}
		if btrack.DiscTotal == 0 {
			btrack.DiscTotal = track.DiscTotal
		}

		if updateTrackNumbers && track.Number != "" {
			base.Delete(btrack.Disc, btrack.Number)
			btrack.Number = track.Number
		}
		base.Set(btrack.Disc, btrack.Number, btrack)
	})
	return combineErr
}

// mergeTitles applies the title selection rules between a base track and an
// incoming one.
func mergeTitles(btrack, track *meta.Track) {
	baseKey := strutil.Strip(strutil.StripAccents(btrack.Title))
	incomingKey := strutil.Strip(strutil.StripAccents(track.Title))

	// A richer source may extend the base title (remix suffixes): replace
	// only when the base title is a fragment of the incoming one.
	if baseKey != incomingKey && btrack.Title != "" && track.Title != "" &&
		strings.Contains(incomingKey, baseKey) {
		btrack.Title = track.Title
	}

	if btrack.Title == "" {
		btrack.Title = track.Title
	}

	// Same title modulo accents: prefer the spelling that kept its
	// diacritics over an ASCII-folded one.
	if strutil.Strip(track.Title) != incomingKey && incomingKey == baseKey {
		btrack.Title = track.Title
	}
}

// mergeArtists unions the incoming track's artists into the base track by
// stripped-name+role identity, extracts remixers named in the incoming
// title, and collapses local name fragments.
func mergeArtists(btrack, track *meta.Track) {
	existing := make(map[meta.Artist]struct{}, len(btrack.Artists))
	for _, a := range btrack.Artists {
		existing[meta.Artist{Name: strutil.Strip(a.Name), Role: a.Role}] = struct{}{}
	}
	present := func(a meta.Artist) bool {
		_, ok := existing[meta.Artist{Name: strutil.Strip(a.Name), Role: a.Role}]
		return ok
	}

	for _, a := range track.Artists {
		if !present(a) {
			btrack.Artists = append(btrack.Artists, a)
		}
	}
	for _, r := range ExtractRemixers(track.Title) {
		if !present(r) {
			btrack.Artists = append(btrack.Artists, r)
		}
	}
	btrack.Artists = artists.CheckFragments(btrack.Artists)
}

// ExtractRemixers parses remixer credits out of a parenthetical mix suffix,
// e.g. "Song (A & B Remix)" credits A and B as remixers. Generic mix-type
// words alone ("Extended Mix") name no one.
func ExtractRemixers(title string) []meta.Artist {
	m := remixerRe.FindStringSubmatch(title)
	if m == nil {
		return nil
	}
	var out []meta.Artist
	for _, name := range remixerSplitRe.Split(strings.TrimSpace(m[1]), -1) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, generic := commonMixTypes[strings.ToLower(name)]; generic {
			continue
		}
		out = append(out, meta.Artist{Name: name, Role: meta.RoleRemixer})
	}
	return out
}
