// Package tagsource seeds a base release record from the audio tags of an
// album folder. The base fixes the disc/track addressing that every scraped
// record is merged against, so it matters that it contains the correct
// number of tracks.
package tagsource

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.senan.xyz/taglib"

	"github.com/llehouerou/coho/internal/meta"
)

// Supported audio file extensions.
var audioExts = map[string]struct{}{
	".flac": {},
	".mp3":  {},
	".m4a":  {},
	".opus": {},
	".ogg":  {},
}

// FromDir builds a base release from the tags of every audio file in dir,
// in filename order. Release-level fields are taken from the first file
// that provides them.
func FromDir(dir string) (*meta.Release, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read album folder: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := audioExts[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no audio files in %s", dir)
	}
	sort.Strings(files)

	r := meta.NewRelease()
	for i, path := range files {
		raw, err := taglib.ReadTags(path)
		if err != nil {
			return nil, fmt.Errorf("read tags from %s: %w", path, err)
		}
		tags := tagValues(raw)
		track := trackFromTags(tags, i+1)
		r.Tracks.Set(track.Disc, track.Number, track)

		fillRelease(r, tags)
	}
	r.Tracks.AssignTotals()
	return r, nil
}

// trackFromTags builds one track; position is the fallback number when the
// file carries none.
func trackFromTags(tags tagValues, position int) *meta.Track {
	num := firstNumber(tags.get(taglib.TrackNumber))
	if num == "" {
		num = strconv.Itoa(position)
	}
	disc := firstNumber(tags.get(taglib.DiscNumber))
	if disc == "" {
		disc = "1"
	}

	t := &meta.Track{
		Number: num,
		Disc:   disc,
		Title:  tags.get(taglib.Title),
		ISRC:   tags.get("ISRC"),
	}
	for _, name := range tags.all(taglib.Artist) {
		t.Artists = append(t.Artists, meta.Artist{Name: name, Role: meta.RoleMain})
	}
	for _, name := range tags.all("REMIXER") {
		t.Artists = append(t.Artists, meta.Artist{Name: name, Role: meta.RoleRemixer})
	}
	for _, name := range tags.all("COMPOSER") {
		t.Artists = append(t.Artists, meta.Artist{Name: name, Role: meta.RoleComposer})
	}
	if rg := tags.get("REPLAYGAIN_TRACK_GAIN"); rg != "" {
		if v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(rg), " dB"), 64); err == nil {
			t.ReplayGain = v
		}
	}
	return t
}

// fillRelease copies release-level tags into r, first value wins.
func fillRelease(r *meta.Release, tags tagValues) {
	if r.Title == "" {
		r.Title = tags.get(taglib.Album)
	}
	if r.Label == "" {
		r.Label = tags.get("LABEL", "ORGANIZATION")
	}
	if r.CatNo == "" {
		r.CatNo = tags.get("CATALOGNUMBER")
	}
	if r.UPC == "" {
		r.UPC = tags.get("BARCODE", "UPC")
	}
	if r.Date == "" {
		r.Date = tags.get(taglib.Date)
		r.Year = yearOf(r.Date)
		r.GroupYear = r.Year
	}
	if r.Genres == nil {
		r.Genres = tags.all(taglib.Genre)
	}
	if r.Source == "" {
		r.Source = mediaSource(tags.get("MEDIA"))
	}
}

// mediaSource maps a MEDIA tag onto the upload media name. Unknown or
// missing media is assumed to be a web rip, the common case for scraped
// folders.
func mediaSource(media string) string {
	switch {
	case strings.Contains(strings.ToLower(media), "cd"):
		return "CD"
	case strings.Contains(strings.ToLower(media), "vinyl"):
		return "Vinyl"
	default:
		return "WEB"
	}
}

// tagValues wraps a taglib result map with lookup helpers.
type tagValues map[string][]string

// get returns the first value for any of the given keys.
func (t tagValues) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// all returns every value for key.
func (t tagValues) all(key string) []string {
	return t[key]
}

// firstNumber extracts N from "N" or "N/M" numbering.
func firstNumber(s string) string {
	if s == "" {
		return ""
	}
	if idx := strings.Index(s, "/"); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

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
