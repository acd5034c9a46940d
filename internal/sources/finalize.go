package sources

import (
	"regexp"
	"strings"

	"github.com/llehouerou/coho/internal/artists"
	"github.com/llehouerou/coho/internal/genres"
	"github.com/llehouerou/coho/internal/meta"
	"github.com/llehouerou/coho/internal/rlstype"
	"github.com/llehouerou/coho/internal/strutil"
)

// Options tunes the scrape post-processing. Zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// VariousArtistThreshold is the remixer count at or above which a track
	// title gets a generic "(Remixed)" suffix instead of naming everyone.
	VariousArtistThreshold int
	// BlacklistedGenres are dropped from scraped genre lists before
	// standardization (some stores tag everything "Soundtrack").
	BlacklistedGenres []string
	// StripUselessVersions removes noise version suffixes ("Original Mix",
	// "Remastered") when normalizing scraped titles.
	StripUselessVersions bool
}

// DefaultOptions returns the stock post-processing settings.
func DefaultOptions() Options {
	return Options{
		VariousArtistThreshold: 4,
		BlacklistedGenres:      []string{"Soundtrack", "Asian Music"},
		StripUselessVersions:   true,
	}
}

// Finalize runs the normalization every scraped record goes through before
// it is eligible for combining: artist generation and fragment repair,
// remixer title suffixes, track totals, release-type classification, label
// resolution and genre cleanup. Mutates r and returns it.
func Finalize(r *meta.Release, opts Options) *meta.Release {
	r.Artists = artists.Generate(r.Tracks)
	AppendRemixerTitles(r.Tracks, opts.VariousArtistThreshold)
	r.Tracks.AssignTotals()
	r.Title, r.ReleaseType = rlstype.Determine(r)
	r.Label = artists.ResolveLabel(r.Label, r.Artists)
	r.Genres = genres.Standardize(filterGenres(r.Genres, opts.BlacklistedGenres))
	RemoveVariousArtists(r.Tracks)
	CleanDuplicateMains(r.Tracks)

	// A catalog number that just repeats the UPC carries no information.
	if r.CatNo != "" && strings.ReplaceAll(r.CatNo, " ", "") == r.UPC {
		r.CatNo = ""
	}
	return r
}

// AppendRemixerTitles suffixes track titles with their remixer credits when
// the title does not already carry a remix marker. At or above threshold
// remixers the generic "(Remixed)" is used instead of listing everyone.
func AppendRemixerTitles(tracks *meta.TrackMap, threshold int) {
	for _, t := range tracks.Flatten() {
		if strings.Contains(t.Title, "Remix") {
			continue
		}
		var remixers []string
		for _, a := range t.Artists {
			if a.Role == meta.RoleRemixer {
				remixers = append(remixers, a.Name)
			}
		}
		switch {
		case threshold > 0 && len(remixers) >= threshold:
			t.Title += " (Remixed)"
		case len(remixers) > 0:
			t.Title += " (" + strings.Join(remixers, " & ") + " Remix)"
		}
	}
}

// RemoveVariousArtists drops "Various Artists" placeholder credits from
// every track; they are a store convention, not an artist.
func RemoveVariousArtists(tracks *meta.TrackMap) {
	for _, t := range tracks.Flatten() {
		var kept []meta.Artist
		for _, a := range t.Artists {
			name := strings.TrimSpace(strings.ToLower(a.Name))
			if name == "various" || strings.Contains(name, "various artists") {
				continue
			}
			kept = append(kept, a)
		}
		t.Artists = kept
	}
}

// CleanDuplicateMains removes a main-role credit that duplicates a guest or
// remixer credit on the same track, unless it is the track's only main
// artist.
func CleanDuplicateMains(tracks *meta.TrackMap) {
	for _, t := range tracks.Flatten() {
		guests := make(map[string]struct{})
		mains := 0
		for _, a := range t.Artists {
			switch a.Role {
			case meta.RoleGuest, meta.RoleRemixer:
				guests[strutil.Strip(a.Name)] = struct{}{}
			case meta.RoleMain:
				mains++
			}
		}
		if mains <= 1 {
			continue
		}
		var kept []meta.Artist
		for _, a := range t.Artists {
			if a.Role == meta.RoleMain && mains > 1 {
				if _, dup := guests[strutil.Strip(a.Name)]; dup {
					mains--
					continue
				}
			}
			kept = append(kept, a)
		}
		t.Artists = kept
	}
}

var uselessVersionRe = regexp.MustCompile(`(?i) \(*(Original( Mix)?|Remastered|Clean|Album.+edition|Album.+mix|feat[^\)]+)\)*$`)

var bracketRe = regexp.MustCompile(`[\(\)\[\]]`)

// ParseTitle normalizes a scraped track or release title, optionally
// stripping noise version suffixes, and folds a separately scraped version
// string into a parenthetical when it adds information.
func ParseTitle(title, version string, stripUseless bool) string {
	base := strings.TrimSpace(title)
	stripSet := map[string]struct{}{strings.ToLower(title): {}}
	if stripUseless {
		base = strings.TrimSpace(uselessVersionRe.ReplaceAllString(title, ""))
		for _, s := range []string{"original mix", "original", "remastered", "clean", "album edition", "album mix"} {
			stripSet[s] = struct{}{}
		}
	}
	if version != "" {
		version = bracketRe.ReplaceAllString(version, "")
		lower := strings.ToLower(version)
		if _, skip := stripSet[lower]; !skip && !strings.Contains(strings.ToLower(base), lower) {
			base += " (" + version + ")"
		}
	}
	return base
}

func filterGenres(list, blacklist []string) []string {
	if len(blacklist) == 0 {
		return list
	}
	var out []string
	for _, g := range list {
		blacklisted := false
		for _, b := range blacklist {
			if strings.EqualFold(g, b) {
				blacklisted = true
				break
			}
		}
		if !blacklisted {
			out = append(out, g)
		}
	}
	return out
}
