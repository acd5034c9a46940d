package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/coho/internal/meta"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "sub", "scrapes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func sampleRelease() *meta.Release {
	r := meta.NewRelease()
	r.Title = "Untrue"
	r.Label = "Hyperdub"
	r.Tracks.Set("1", "1", &meta.Track{Disc: "1", Number: "1", Title: "Archangel"})
	return r
}

func TestCacheRoundTrip(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("MusicBrainz", "https://example/release/1", sampleRelease()))

	got, ok, err := c.Get("MusicBrainz", "https://example/release/1", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Untrue", got.Title)
	assert.Equal(t, "Hyperdub", got.Label)
	require.Equal(t, 1, got.TrackCount())
	assert.Equal(t, "Archangel", got.Tracks.Get("1", "1").Title)
}

func TestCacheMiss(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Get("MusicBrainz", "https://example/release/none", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheKeyedBySource(t *testing.T) {
	c := openTestCache(t)
	url := "https://example/release/1"

	require.NoError(t, c.Put("MusicBrainz", url, sampleRelease()))

	_, ok, err := c.Get("Discogs", url, time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheExpiredEntryIsMiss(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("MusicBrainz", "https://example/release/1", sampleRelease()))
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get("MusicBrainz", "https://example/release/1", time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheNonPositiveTTLNeverExpires(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("MusicBrainz", "https://example/release/1", sampleRelease()))

	_, ok, err := c.Get("MusicBrainz", "https://example/release/1", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCachePutOverwrites(t *testing.T) {
	c := openTestCache(t)
	url := "https://example/release/1"

	require.NoError(t, c.Put("MusicBrainz", url, sampleRelease()))
	updated := sampleRelease()
	updated.Title = "Untrue (Remastered)"
	require.NoError(t, c.Put("MusicBrainz", url, updated))

	got, ok, err := c.Get("MusicBrainz", url, time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Untrue (Remastered)", got.Title)
}

func TestCachePrune(t *testing.T) {
	c := openTestCache(t)

	require.NoError(t, c.Put("MusicBrainz", "https://example/release/1", sampleRelease()))

	// Negative TTL puts the cutoff in the future, so the entry qualifies.
	n, err := c.Prune(-time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok, err := c.Get("MusicBrainz", "https://example/release/1", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
}
