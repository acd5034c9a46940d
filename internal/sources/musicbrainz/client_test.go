package musicbrainz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/coho/internal/meta"
)

const releaseJSON = `{
	"id": "7c9d2d55-1fb9-4425-a0ba-6fa5e9a41b22",
	"title": "Untrue",
	"date": "2007-11-05",
	"barcode": "5024545484526",
	"label-info": [
		{"catalog-number": "HDBCD002", "label": {"name": "Hyperdub"}}
	],
	"release-group": {
		"primary-type": "Album",
		"first-release-date": "2007-11-05"
	},
	"genres": [{"name": "dubstep"}],
	"media": [
		{
			"position": 1,
			"format": "CD",
			"tracks": [
				{
					"number": "1",
					"title": "Untitled",
					"artist-credit": [{"name": "Burial", "artist": {"name": "Burial"}}],
					"recording": {"isrcs": ["GBBPC0700001"]}
				},
				{
					"number": "2",
					"title": "Archangel",
					"artist-credit": [{"name": "Burial", "artist": {"name": "Burial"}}],
					"recording": {}
				}
			]
		}
	]
}`

func TestMatch(t *testing.T) {
	c := NewClient()

	assert.True(t, c.Match("https://musicbrainz.org/release/7c9d2d55-1fb9-4425-a0ba-6fa5e9a41b22"))
	assert.True(t, c.Match("http://www.musicbrainz.org/release/7c9d2d55-1fb9-4425-a0ba-6fa5e9a41b22"))
	assert.False(t, c.Match("https://musicbrainz.org/artist/7c9d2d55-1fb9-4425-a0ba-6fa5e9a41b22"))
	assert.False(t, c.Match("https://example.com/release/abc"))
}

func TestScrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/release/7c9d2d55-1fb9-4425-a0ba-6fa5e9a41b22", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("fmt"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(releaseJSON))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	release, err := c.Scrape(context.Background(),
		"https://musicbrainz.org/release/7c9d2d55-1fb9-4425-a0ba-6fa5e9a41b22")
	require.NoError(t, err)

	assert.Equal(t, "Untrue", release.Title)
	assert.Equal(t, "2007-11-05", release.Date)
	assert.Equal(t, 2007, release.Year)
	assert.Equal(t, 2007, release.GroupYear)
	assert.Equal(t, "Album", release.ReleaseType)
	assert.Equal(t, "5024545484526", release.UPC)
	assert.Equal(t, "Hyperdub", release.Label)
	assert.Equal(t, "HDBCD002", release.CatNo)
	assert.Equal(t, []string{"dubstep"}, release.Genres)
	assert.Equal(t, []string{"https://musicbrainz.org/release/7c9d2d55-1fb9-4425-a0ba-6fa5e9a41b22"}, release.URLs)

	require.Equal(t, 2, release.TrackCount())
	first := release.Tracks.Get("1", "1")
	require.NotNil(t, first)
	assert.Equal(t, "Untitled", first.Title)
	assert.Equal(t, "GBBPC0700001", first.ISRC)
	assert.Equal(t, []meta.Artist{{Name: "Burial", Role: meta.RoleMain}}, first.Artists)

	second := release.Tracks.Get("1", "2")
	require.NotNil(t, second)
	assert.Equal(t, "Archangel", second.Title)
	assert.Empty(t, second.ISRC)
}

func TestScrapeRejectsForeignURL(t *testing.T) {
	c := NewClient()
	_, err := c.Scrape(context.Background(), "https://example.com/release/123")
	assert.Error(t, err)
}

func TestScrapeNotFoundIsFatal(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, `{"error":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL)
	_, err := c.Scrape(context.Background(),
		"https://musicbrainz.org/release/7c9d2d55-1fb9-4425-a0ba-6fa5e9a41b22")

	require.Error(t, err)
	// 4xx responses are not retried.
	assert.Equal(t, 1, calls)
}

func TestConvertReleaseDefaults(t *testing.T) {
	raw := &releaseResponse{
		ID:    "abc",
		Title: "Bare",
		Date:  "1999",
		Media: []medium{{Tracks: []mbzTrack{{Title: "Only"}}}},
	}

	release := convertRelease(raw)

	assert.Equal(t, 1999, release.Year)
	// Missing release group falls back to the release year.
	assert.Equal(t, 1999, release.GroupYear)
	// Zero medium position and missing track numbers get defaults.
	tr := release.Tracks.Get("1", "1")
	require.NotNil(t, tr)
	assert.Equal(t, "Only", tr.Title)
}
