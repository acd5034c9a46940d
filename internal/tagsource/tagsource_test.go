package tagsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.senan.xyz/taglib"

	"github.com/llehouerou/coho/internal/meta"
)

func TestFromDirNoAudioFiles(t *testing.T) {
	_, err := FromDir(t.TempDir())
	assert.Error(t, err)
}

func TestFromDirMissing(t *testing.T) {
	_, err := FromDir("/does/not/exist")
	assert.Error(t, err)
}

func TestTrackFromTags(t *testing.T) {
	tags := tagValues{
		taglib.TrackNumber:      {"3/12"},
		taglib.DiscNumber:       {"2"},
		taglib.Title:            {"Archangel"},
		taglib.Artist:           {"Burial"},
		"REMIXER":               {"Zomby"},
		"COMPOSER":              {"W. Bevan"},
		"ISRC":                  {"GBBPC0700001"},
		"REPLAYGAIN_TRACK_GAIN": {"-6.54 dB"},
	}

	got := trackFromTags(tags, 9)

	assert.Equal(t, "3", got.Number)
	assert.Equal(t, "2", got.Disc)
	assert.Equal(t, "Archangel", got.Title)
	assert.Equal(t, "GBBPC0700001", got.ISRC)
	assert.Equal(t, -6.54, got.ReplayGain)
	assert.Equal(t, []meta.Artist{
		{Name: "Burial", Role: meta.RoleMain},
		{Name: "Zomby", Role: meta.RoleRemixer},
		{Name: "W. Bevan", Role: meta.RoleComposer},
	}, got.Artists)
}

func TestTrackFromTagsFallbacks(t *testing.T) {
	got := trackFromTags(tagValues{}, 4)

	assert.Equal(t, "4", got.Number)
	assert.Equal(t, "1", got.Disc)
	assert.Empty(t, got.Title)
}

func TestFillReleaseFirstValueWins(t *testing.T) {
	r := meta.NewRelease()

	fillRelease(r, tagValues{
		taglib.Album:    {"Untrue"},
		"LABEL":         {"Hyperdub"},
		"CATALOGNUMBER": {"HDBCD002"},
		"BARCODE":       {"5024545484526"},
		taglib.Date:     {"2007-11-05"},
		taglib.Genre:    {"Dubstep", "Electronic"},
		"MEDIA":         {"CD"},
	})
	fillRelease(r, tagValues{
		taglib.Album: {"Other Album"},
		"LABEL":      {"Other Label"},
	})

	assert.Equal(t, "Untrue", r.Title)
	assert.Equal(t, "Hyperdub", r.Label)
	assert.Equal(t, "HDBCD002", r.CatNo)
	assert.Equal(t, "5024545484526", r.UPC)
	assert.Equal(t, "2007-11-05", r.Date)
	assert.Equal(t, 2007, r.Year)
	assert.Equal(t, 2007, r.GroupYear)
	assert.Equal(t, []string{"Dubstep", "Electronic"}, r.Genres)
	assert.Equal(t, "CD", r.Source)
}

func TestFillReleaseAlternateKeys(t *testing.T) {
	r := meta.NewRelease()

	fillRelease(r, tagValues{
		"ORGANIZATION": {"Warp"},
		"UPC":          {"12345"},
	})

	assert.Equal(t, "Warp", r.Label)
	assert.Equal(t, "12345", r.UPC)
}

func TestMediaSource(t *testing.T) {
	tests := []struct {
		media    string
		expected string
	}{
		{"CD", "CD"},
		{"cd", "CD"},
		{"Vinyl", "Vinyl"},
		{"12\" Vinyl", "Vinyl"},
		{"Digital Media", "WEB"},
		{"", "WEB"},
	}

	for _, tt := range tests {
		t.Run(tt.media, func(t *testing.T) {
			assert.Equal(t, tt.expected, mediaSource(tt.media))
		})
	}
}

func TestFirstNumber(t *testing.T) {
	assert.Equal(t, "3", firstNumber("3/12"))
	assert.Equal(t, "3", firstNumber("3"))
	assert.Equal(t, "", firstNumber(""))
	assert.Equal(t, "A1", firstNumber(" A1 "))
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 2007, yearOf("2007-11-05"))
	assert.Equal(t, 1999, yearOf("1999"))
	assert.Equal(t, 0, yearOf("bad"))
	assert.Equal(t, 0, yearOf(""))
}

func TestTagValues(t *testing.T) {
	tags := tagValues{"A": {"one", "two"}, "B": {"three"}}

	assert.Equal(t, "one", tags.get("A"))
	assert.Equal(t, "three", tags.get("MISSING", "B"))
	assert.Equal(t, "", tags.get("MISSING"))
	require.Equal(t, []string{"one", "two"}, tags.all("A"))
	assert.Nil(t, tags.all("MISSING"))
}
