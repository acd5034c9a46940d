package musicbrainz

import (
	"fmt"
	"strconv"

	"github.com/llehouerou/coho/internal/meta"
)

// Raw ws/2 response shapes. Only the fields the converter reads are
// declared.

type releaseResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Date         string         `json:"date"`
	Barcode      string         `json:"barcode"`
	ArtistCredit []artistCredit `json:"artist-credit"`
	LabelInfo    []labelInfo    `json:"label-info"`
	Media        []medium       `json:"media"`
	ReleaseGroup *releaseGroup  `json:"release-group"`
	Genres       []genre        `json:"genres"`
}

type artistCredit struct {
	Name       string `json:"name"`
	JoinPhrase string `json:"joinphrase"`
	Artist     struct {
		Name string `json:"name"`
	} `json:"artist"`
}

type labelInfo struct {
	CatalogNumber string `json:"catalog-number"`
	Label         struct {
		Name string `json:"name"`
	} `json:"label"`
}

type medium struct {
	Position int        `json:"position"`
	Format   string     `json:"format"`
	Tracks   []mbzTrack `json:"tracks"`
}

type mbzTrack struct {
	Number       string         `json:"number"`
	Title        string         `json:"title"`
	ArtistCredit []artistCredit `json:"artist-credit"`
	Recording    struct {
		ISRCs []string `json:"isrcs"`
	} `json:"recording"`
}

type releaseGroup struct {
	PrimaryType      string `json:"primary-type"`
	FirstReleaseDate string `json:"first-release-date"`
}

type genre struct {
	Name string `json:"name"`
}

// convertRelease maps a ws/2 release onto the common record shape. Fields
// MusicBrainz does not provide stay zero for the combiner to fill from
// other sources.
func convertRelease(raw *releaseResponse) *meta.Release {
	r := meta.NewRelease()
	r.Title = raw.Title
	r.Date = raw.Date
	r.Year = yearOf(raw.Date)
	r.UPC = raw.Barcode
	r.URL = fmt.Sprintf("https://musicbrainz.org/release/%s", raw.ID)
	r.URLs = []string{r.URL}

	if raw.ReleaseGroup != nil {
		r.ReleaseType = raw.ReleaseGroup.PrimaryType
		r.GroupYear = yearOf(raw.ReleaseGroup.FirstReleaseDate)
	}
	if r.GroupYear == 0 {
		r.GroupYear = r.Year
	}

	if len(raw.LabelInfo) > 0 {
		r.Label = raw.LabelInfo[0].Label.Name
		r.CatNo = raw.LabelInfo[0].CatalogNumber
	}

	for _, g := range raw.Genres {
		r.Genres = append(r.Genres, g.Name)
	}

	for _, m := range raw.Media {
		disc := strconv.Itoa(m.Position)
		if m.Position == 0 {
			disc = "1"
		}
		for i, t := range m.Tracks {
			num := t.Number
			if num == "" {
				num = strconv.Itoa(i + 1)
			}
			track := &meta.Track{
				Number:  num,
				Disc:    disc,
				Title:   t.Title,
				Artists: creditedArtists(t.ArtistCredit),
			}
			if len(t.Recording.ISRCs) > 0 {
				track.ISRC = t.Recording.ISRCs[0]
			}
			r.Tracks.Set(disc, num, track)
		}
	}
	return r
}

// creditedArtists flattens an artist-credit list into main-role artists.
// Join phrases are presentation only; each credited artist stands alone.
func creditedArtists(credits []artistCredit) []meta.Artist {
	var out []meta.Artist
	for _, c := range credits {
		name := c.Name
		if name == "" {
			name = c.Artist.Name
		}
		if name == "" {
			continue
		}
		out = append(out, meta.Artist{Name: name, Role: meta.RoleMain})
	}
	return out
}

// yearOf returns the year of a YYYY or YYYY-MM-DD date, or 0.
func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}
