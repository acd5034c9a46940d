// Package sources defines the contract between the per-site metadata
// scrapers and the combiner: the (source, record) pairs the combiner
// consumes, the URL registry that resolves a link to its source, and the
// static preference order that decides which source's values win a tie.
package sources

import (
	"regexp"

	"github.com/llehouerou/coho/internal/meta"
)

// Record is one scraped release from one source.
type Record struct {
	Source  string
	Release *meta.Release
}

// Source names. Preference order below is maintained by hand: streaming
// stores with clean per-track data first, databases with user-entered data
// after.
const (
	Tidal        = "Tidal"
	Deezer       = "Deezer"
	Qobuz        = "Qobuz"
	Bandcamp     = "Bandcamp"
	MusicBrainz  = "MusicBrainz"
	Junodownload = "Junodownload"
	Discogs      = "Discogs"
	Beatport     = "Beatport"
	ITunes       = "iTunes"
)

// preferences is the static source priority: earlier wins. iTunes sits
// last because its scraper is the least reliable.
var preferences = []string{
	Tidal,
	Deezer,
	Qobuz,
	Bandcamp,
	MusicBrainz,
	Junodownload,
	Discogs,
	Beatport,
	ITunes,
}

// urlPatterns resolves a release URL to its source. Bandcamp matches
// arbitrary custom domains, so it is tried after every host-specific
// pattern.
var urlPatterns = []struct {
	source string
	re     *regexp.Regexp
}{
	{Tidal, regexp.MustCompile(`^https?://.*?(?:tidal|wimpmusic)\.com.*?/(?:album|track|playlist)/[0-9a-z\-]+`)},
	{Deezer, regexp.MustCompile(`^https?://.*?deezer\.com.*?/(?:[a-z]+/)?(?:album|playlist|track)/[0-9]+`)},
	{Qobuz, regexp.MustCompile(`^https?://(?:www\.|play\.)?qobuz\.com/(?:(?:.+?/)?album/(?:.+?/)?|album/(?:-/)?)[a-zA-Z0-9]+/?$`)},
	{MusicBrainz, regexp.MustCompile(`^https?://(?:www\.)?musicbrainz\.org/release/[a-z0-9\-]+$`)},
	{Junodownload, regexp.MustCompile(`^https?://(?:www\.)?junodownload\.com/products/.+`)},
	{Discogs, regexp.MustCompile(`^https?://(?:www\.)?discogs\.com/(?:.+?/)?release/\d+/?$`)},
	{Beatport, regexp.MustCompile(`^https?://(?:(?:www|classic)\.)?beatport\.com/release/.+?/\d+/?$`)},
	{ITunes, regexp.MustCompile(`^https?://(?:itunes|music)\.apple\.com/.+/album/.+`)},
	{Bandcamp, regexp.MustCompile(`^https?://[^/]+/(?:album|track)/[^/]+/?`)},
}

// FromURL resolves a release URL to the source that owns it, or "" when no
// source matches (or the URL is empty).
func FromURL(url string) string {
	if url == "" {
		return ""
	}
	for _, p := range urlPatterns {
		if p.re.MatchString(url) {
			return p.source
		}
	}
	return ""
}

// IsPreferred reports whether name is in the static preference list.
func IsPreferred(name string) bool {
	for _, p := range preferences {
		if p == name {
			return true
		}
	}
	return false
}

// PreferenceOrder returns the source walk order: preferred (when it is a
// known source) first, then the static list minus it.
func PreferenceOrder(preferred string) []string {
	var order []string
	if preferred != "" && IsPreferred(preferred) {
		order = append(order, preferred)
	}
	for _, p := range preferences {
		if p != preferred {
			order = append(order, p)
		}
	}
	return order
}
