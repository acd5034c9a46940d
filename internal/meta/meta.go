// Package meta defines the release metadata model shared by the scrapers,
// the combiner and the upload pipeline.
//
// Zero values stand for "not provided": sources fill what they know and
// leave the rest empty, and the combiner treats empty as missing. This also
// applies to numeric fields (a replay gain of exactly 0 counts as unset).
package meta

// Role classifies an artist's contribution to a track or release.
type Role string

const (
	RoleMain       Role = "main"
	RoleGuest      Role = "guest"
	RoleRemixer    Role = "remixer"
	RoleComposer   Role = "composer"
	RoleConductor  Role = "conductor"
	RoleDJCompiler Role = "djcompiler"
	RoleProducer   Role = "producer"
)

// Artist is a single credited contributor. Name is the raw scraped spelling
// until artist normalization assigns a canonical form.
type Artist struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Track is one track of a release. Number and Disc are strings because
// sources disagree on numbering schemes (vinyl sides, "1.01", etc.).
type Track struct {
	Number     string   `json:"number"`
	Disc       string   `json:"disc"`
	TrackTotal int      `json:"track_total,omitempty"`
	DiscTotal  int      `json:"disc_total,omitempty"`
	Title      string   `json:"title"`
	Artists    []Artist `json:"artists"`
	ReplayGain float64  `json:"replay_gain,omitempty"`
	Peak       float64  `json:"peak,omitempty"`
	Format     string   `json:"format,omitempty"`
	Explicit   bool     `json:"explicit,omitempty"`
	ISRC       string   `json:"isrc,omitempty"`

	// Source-specific passthrough fields. Carried, never merged.
	StreamID  string `json:"stream_id,omitempty"`
	MD5Origin string `json:"md5_origin,omitempty"`
}

// Release is the central record: one album/EP/single being prepared for
// upload. It starts as a shell or as a base seeded from file tags, is
// mutated field by field as each source is folded in, and is finalized by
// the artist, genre and label passes.
type Release struct {
	Title        string    `json:"title"`
	Artists      []Artist  `json:"artists"`
	Year         int       `json:"year,omitempty"`
	GroupYear    int       `json:"group_year,omitempty"`
	Date         string    `json:"date,omitempty"`
	EditionTitle string    `json:"edition_title,omitempty"`
	Label        string    `json:"label,omitempty"`
	CatNo        string    `json:"catno,omitempty"`
	UPC          string    `json:"upc,omitempty"`
	Genres       []string  `json:"genres,omitempty"`
	ReleaseType  string    `json:"release_type,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	Cover        string    `json:"cover,omitempty"`
	Source       string    `json:"source,omitempty"` // media: WEB, CD, Vinyl, ...
	URL          string    `json:"url,omitempty"`    // transient, cleared by the combiner
	URLs         []string  `json:"urls,omitempty"`
	Tracks       *TrackMap `json:"tracks"`
}

// NewRelease returns an empty release with an initialized track map.
func NewRelease() *Release {
	return &Release{Tracks: NewTrackMap()}
}

// TrackCount returns the number of tracks across all discs.
func (r *Release) TrackCount() int {
	if r.Tracks == nil {
		return 0
	}
	return r.Tracks.Len()
}

// MainArtistNames returns the distinct names credited with the main role,
// in first-seen order.
func (r *Release) MainArtistNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, a := range r.Artists {
		if a.Role != RoleMain {
			continue
		}
		if _, ok := seen[a.Name]; ok {
			continue
		}
		seen[a.Name] = struct{}{}
		names = append(names, a.Name)
	}
	return names
}

// HasArtist reports whether the release credits name with role.
func (r *Release) HasArtist(name string, role Role) bool {
	for _, a := range r.Artists {
		if a.Name == name && a.Role == role {
			return true
		}
	}
	return false
}
