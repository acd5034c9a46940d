package sources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/coho/internal/meta"
)

func trackMapOf(tracks ...*meta.Track) *meta.TrackMap {
	m := meta.NewTrackMap()
	for i, t := range tracks {
		if t.Disc == "" {
			t.Disc = "1"
		}
		if t.Number == "" {
			t.Number = string(rune('1' + i))
		}
		m.Set(t.Disc, t.Number, t)
	}
	return m
}

func TestAppendRemixerTitles(t *testing.T) {
	tracks := trackMapOf(
		&meta.Track{Title: "One", Artists: []meta.Artist{
			{Name: "A", Role: meta.RoleRemixer},
			{Name: "B", Role: meta.RoleRemixer},
		}},
		&meta.Track{Title: "Two (C Remix)", Artists: []meta.Artist{
			{Name: "C", Role: meta.RoleRemixer},
		}},
		&meta.Track{Title: "Three"},
	)

	AppendRemixerTitles(tracks, 4)

	flat := tracks.Flatten()
	assert.Equal(t, "One (A & B Remix)", flat[0].Title)
	// Already carries a remix marker, left alone.
	assert.Equal(t, "Two (C Remix)", flat[1].Title)
	assert.Equal(t, "Three", flat[2].Title)
}

func TestAppendRemixerTitlesThreshold(t *testing.T) {
	tracks := trackMapOf(
		&meta.Track{Title: "Crowded", Artists: []meta.Artist{
			{Name: "A", Role: meta.RoleRemixer},
			{Name: "B", Role: meta.RoleRemixer},
			{Name: "C", Role: meta.RoleRemixer},
			{Name: "D", Role: meta.RoleRemixer},
		}},
	)

	AppendRemixerTitles(tracks, 4)

	assert.Equal(t, "Crowded (Remixed)", tracks.Flatten()[0].Title)
}

func TestRemoveVariousArtists(t *testing.T) {
	tracks := trackMapOf(
		&meta.Track{Artists: []meta.Artist{
			{Name: "Various Artists", Role: meta.RoleMain},
			{Name: "various", Role: meta.RoleMain},
			{Name: "Aphex Twin", Role: meta.RoleMain},
		}},
	)

	RemoveVariousArtists(tracks)

	assert.Equal(t, []meta.Artist{{Name: "Aphex Twin", Role: meta.RoleMain}},
		tracks.Flatten()[0].Artists)
}

func TestCleanDuplicateMains(t *testing.T) {
	tracks := trackMapOf(
		&meta.Track{Artists: []meta.Artist{
			{Name: "Zomby", Role: meta.RoleMain},
			{Name: "Burial", Role: meta.RoleMain},
			{Name: "Zomby", Role: meta.RoleRemixer},
		}},
	)

	CleanDuplicateMains(tracks)

	assert.Equal(t, []meta.Artist{
		{Name: "Burial", Role: meta.RoleMain},
		{Name: "Zomby", Role: meta.RoleRemixer},
	}, tracks.Flatten()[0].Artists)
}

func TestCleanDuplicateMainsKeepsOnlyMain(t *testing.T) {
	tracks := trackMapOf(
		&meta.Track{Artists: []meta.Artist{
			{Name: "Zomby", Role: meta.RoleMain},
			{Name: "Zomby", Role: meta.RoleRemixer},
		}},
	)

	CleanDuplicateMains(tracks)

	assert.Equal(t, []meta.Artist{
		{Name: "Zomby", Role: meta.RoleMain},
		{Name: "Zomby", Role: meta.RoleRemixer},
	}, tracks.Flatten()[0].Artists)
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		version  string
		strip    bool
		expected string
	}{
		{"strips original mix", "Song (Original Mix)", "", true, "Song"},
		{"strips remastered", "Song (Remastered)", "", true, "Song"},
		{"keeps suffix when stripping disabled", "Song (Original Mix)", "", false, "Song (Original Mix)"},
		{"appends informative version", "Song", "Deluxe Edition", true, "Song (Deluxe Edition)"},
		{"skips version already in title", "Song (Deluxe Edition)", "Deluxe Edition", true, "Song (Deluxe Edition)"},
		{"skips useless version", "Song", "Original Mix", true, "Song"},
		{"plain title", "Song", "", true, "Song"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTitle(tt.title, tt.version, tt.strip))
		})
	}
}

func TestFinalize(t *testing.T) {
	r := meta.NewRelease()
	r.Title = "Some Songs EP"
	r.Label = "Warp"
	r.UPC = "5021603123458"
	r.CatNo = "5021603123458"
	r.Genres = []string{"hip-hop", "Soundtrack"}
	r.Tracks = trackMapOf(
		&meta.Track{Title: "One", Artists: []meta.Artist{{Name: "Artist", Role: meta.RoleMain}}},
		&meta.Track{Title: "Two", Artists: []meta.Artist{{Name: "Artist", Role: meta.RoleMain}}},
		&meta.Track{Title: "Three", Artists: []meta.Artist{{Name: "Artist", Role: meta.RoleMain}}},
		&meta.Track{Title: "Four", Artists: []meta.Artist{{Name: "Artist", Role: meta.RoleMain}}},
	)

	got := Finalize(r, DefaultOptions())

	assert.Equal(t, "Some Songs", got.Title)
	assert.Equal(t, "EP", got.ReleaseType)
	assert.Equal(t, []meta.Artist{{Name: "Artist", Role: meta.RoleMain}}, got.Artists)
	// Blacklisted genre dropped, remainder standardized.
	assert.Equal(t, []string{"Hip Hop"}, got.Genres)
	// Catalog number that repeats the UPC is dropped.
	assert.Equal(t, "", got.CatNo)
	assert.Equal(t, "Warp", got.Label)
	require.Equal(t, 4, got.TrackCount())
	for _, tr := range got.Tracks.Flatten() {
		assert.Equal(t, 4, tr.TrackTotal)
		assert.Equal(t, 1, tr.DiscTotal)
	}
}
