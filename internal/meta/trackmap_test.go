package meta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackMapInsertionOrder(t *testing.T) {
	m := NewTrackMap()
	m.Set("1", "1", &Track{Disc: "1", Number: "1", Title: "a"})
	m.Set("1", "2", &Track{Disc: "1", Number: "2", Title: "b"})
	m.Set("2", "1", &Track{Disc: "2", Number: "1", Title: "c"})

	assert.Equal(t, []string{"1", "2"}, m.Discs())
	titles := make([]string, 0, m.Len())
	for _, tr := range m.Flatten() {
		titles = append(titles, tr.Title)
	}
	assert.Equal(t, []string{"a", "b", "c"}, titles)
}

func TestTrackMapSetExistingKeepsPosition(t *testing.T) {
	m := NewTrackMap()
	m.Set("1", "1", &Track{Title: "first"})
	m.Set("1", "2", &Track{Title: "second"})
	m.Set("1", "1", &Track{Title: "replaced"})

	tracks := m.Flatten()
	require.Len(t, tracks, 2)
	assert.Equal(t, "replaced", tracks[0].Title)
	assert.Equal(t, "second", tracks[1].Title)
}

func TestTrackMapDelete(t *testing.T) {
	m := NewTrackMap()
	m.Set("1", "1", &Track{Title: "a"})
	m.Set("1", "2", &Track{Title: "b"})

	m.Delete("1", "1")

	assert.Nil(t, m.Get("1", "1"))
	assert.Equal(t, 1, m.Len())
	// The disc itself stays, even when emptied.
	m.Delete("1", "2")
	assert.Equal(t, []string{"1"}, m.Discs())
}

func TestTrackMapDeleteMissing(t *testing.T) {
	m := NewTrackMap()
	m.Set("1", "1", &Track{Title: "a"})

	m.Delete("2", "1")
	m.Delete("1", "9")

	assert.Equal(t, 1, m.Len())
}

func TestAssignTotals(t *testing.T) {
	m := NewTrackMap()
	m.Set("1", "1", &Track{Disc: "1", Number: "1"})
	m.Set("1", "2", &Track{Disc: "1", Number: "2"})
	m.Set("2", "1", &Track{Disc: "2", Number: "1"})

	m.AssignTotals()

	assert.Equal(t, 2, m.Get("1", "1").TrackTotal)
	assert.Equal(t, 2, m.Get("1", "2").TrackTotal)
	assert.Equal(t, 1, m.Get("2", "1").TrackTotal)
	for _, tr := range m.Flatten() {
		assert.Equal(t, 2, tr.DiscTotal)
	}
}

func TestTrackMapJSONRoundTrip(t *testing.T) {
	m := NewTrackMap()
	m.Set("1", "1", &Track{Disc: "1", Number: "1", Title: "a"})
	m.Set("1", "2", &Track{Disc: "1", Number: "2", Title: "b"})
	m.Set("2", "1", &Track{Disc: "2", Number: "1", Title: "c"})

	data, err := json.Marshal(m)
	require.NoError(t, err)

	decoded := NewTrackMap()
	require.NoError(t, json.Unmarshal(data, decoded))

	require.Equal(t, m.Len(), decoded.Len())
	assert.Equal(t, m.Discs(), decoded.Discs())
	for i, tr := range m.Flatten() {
		assert.Equal(t, tr.Title, decoded.Flatten()[i].Title)
	}
}

func TestMainArtistNames(t *testing.T) {
	r := NewRelease()
	r.Artists = []Artist{
		{Name: "A", Role: RoleMain},
		{Name: "B", Role: RoleGuest},
		{Name: "A", Role: RoleMain},
		{Name: "C", Role: RoleMain},
	}

	assert.Equal(t, []string{"A", "C"}, r.MainArtistNames())
}
