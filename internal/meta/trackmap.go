package meta

import "encoding/json"

// TrackMap is an insertion-ordered disc -> track-number -> *Track mapping.
//
// The combiner pairs tracks positionally, so iteration order matters:
// setting an existing key updates it in place, a new key appends at the end,
// and deleting a key removes it from the order. These are the semantics the
// track renumbering path relies on.
type TrackMap struct {
	discOrder []string
	discs     map[string]*discTracks
}

type discTracks struct {
	numOrder []string
	tracks   map[string]*Track
}

// NewTrackMap returns an empty track map.
func NewTrackMap() *TrackMap {
	return &TrackMap{discs: make(map[string]*discTracks)}
}

// Set stores t under (disc, num). An existing slot keeps its position.
func (m *TrackMap) Set(disc, num string, t *Track) {
	d, ok := m.discs[disc]
	if !ok {
		d = &discTracks{tracks: make(map[string]*Track)}
		m.discs[disc] = d
		m.discOrder = append(m.discOrder, disc)
	}
	if _, ok := d.tracks[num]; !ok {
		d.numOrder = append(d.numOrder, num)
	}
	d.tracks[num] = t
}

// Get returns the track at (disc, num), or nil.
func (m *TrackMap) Get(disc, num string) *Track {
	d, ok := m.discs[disc]
	if !ok {
		return nil
	}
	return d.tracks[num]
}

// Delete removes the track at (disc, num) if present.
func (m *TrackMap) Delete(disc, num string) {
	d, ok := m.discs[disc]
	if !ok {
		return
	}
	if _, ok := d.tracks[num]; !ok {
		return
	}
	delete(d.tracks, num)
	for i, n := range d.numOrder {
		if n == num {
			d.numOrder = append(d.numOrder[:i], d.numOrder[i+1:]...)
			break
		}
	}
	// A disc left empty keeps its position; renumbering may refill it.
}

// Discs returns the disc numbers in insertion order.
func (m *TrackMap) Discs() []string {
	out := make([]string, len(m.discOrder))
	copy(out, m.discOrder)
	return out
}

// DiscTracks returns the tracks of one disc in insertion order.
func (m *TrackMap) DiscTracks(disc string) []*Track {
	d, ok := m.discs[disc]
	if !ok {
		return nil
	}
	out := make([]*Track, 0, len(d.numOrder))
	for _, num := range d.numOrder {
		out = append(out, d.tracks[num])
	}
	return out
}

// DiscLen returns the number of tracks on a disc.
func (m *TrackMap) DiscLen(disc string) int {
	d, ok := m.discs[disc]
	if !ok {
		return 0
	}
	return len(d.numOrder)
}

// DiscCount returns the number of discs.
func (m *TrackMap) DiscCount() int {
	return len(m.discOrder)
}

// Len returns the total number of tracks.
func (m *TrackMap) Len() int {
	n := 0
	for _, d := range m.discs {
		n += len(d.numOrder)
	}
	return n
}

// Flatten returns every track in disc/track insertion order.
func (m *TrackMap) Flatten() []*Track {
	var out []*Track
	for _, disc := range m.discOrder {
		d := m.discs[disc]
		for _, num := range d.numOrder {
			out = append(out, d.tracks[num])
		}
	}
	return out
}

// Walk calls fn for every track in insertion order.
func (m *TrackMap) Walk(fn func(disc, num string, t *Track)) {
	for _, disc := range m.discOrder {
		d := m.discs[disc]
		for _, num := range append([]string(nil), d.numOrder...) {
			if t, ok := d.tracks[num]; ok {
				fn(disc, num, t)
			}
		}
	}
}

// AssignTotals recomputes TrackTotal and DiscTotal on every track from the
// current shape of the map. Totals are never trusted from any one source.
func (m *TrackMap) AssignTotals() {
	discTotal := len(m.discOrder)
	for _, disc := range m.discOrder {
		d := m.discs[disc]
		for _, num := range d.numOrder {
			d.tracks[num].TrackTotal = len(d.numOrder)
			d.tracks[num].DiscTotal = discTotal
		}
	}
}

// MarshalJSON encodes the map as a flat track array; each track carries its
// own disc and number so order survives a round trip.
func (m *TrackMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Flatten())
}

// UnmarshalJSON rebuilds the map from a flat track array.
func (m *TrackMap) UnmarshalJSON(data []byte) error {
	var tracks []*Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return err
	}
	*m = *NewTrackMap()
	for _, t := range tracks {
		m.Set(t.Disc, t.Number, t)
	}
	return nil
}
