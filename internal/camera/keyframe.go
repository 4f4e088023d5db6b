// Package camera defines the keyframe data model and its canonical JSON form.
//
// A camera path file is a JSON object keyed by an opaque string id, each value
// holding one keyframe (FOV, frame index, world position, rotation in engine
// angular units, timestamp, blend weight). The map carries no ordering;
// anything that needs temporal order sorts by Timestamp explicitly.
package camera

import "sort"

// Position is a world-space coordinate.
type Position struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

// Rotation is an orientation in engine angular units (182.04 units per
// degree), not degrees. Components wrap by plain integer arithmetic.
type Rotation struct {
	Pitch int `json:"Pitch"`
	Roll  int `json:"Roll"`
	Yaw   int `json:"Yaw"`
}

// Keyframe is a single timed camera sample.
//
// Frame is derived from Timestamp at a fixed 30 fps contract; any code that
// writes Timestamp must resync Frame via units.FrameForTimestamp in the same
// pass.
type Keyframe struct {
	FOV       float64  `json:"FOV"`
	Frame     int      `json:"Frame"`
	Position  Position `json:"Position"`
	Rotation  Rotation `json:"Rotation"`
	Timestamp float64  `json:"Timestamp"`
	Weight    float64  `json:"Weight"`
}

// Path maps keyframe ids to keyframes. Ids are opaque; uniqueness is the only
// structural invariant.
type Path map[string]Keyframe

// Clone returns an independent copy of the path. Transforms operate on a
// clone so the caller's map is never mutated.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	for id, kf := range p {
		out[id] = kf
	}
	return out
}

// Entry pairs a keyframe with its id for ordered processing.
type Entry struct {
	ID       string
	Keyframe Keyframe
}

// SortedByTimestamp returns the path's entries ordered by ascending
// timestamp. Ties are broken by id so the order is deterministic regardless
// of map iteration.
func (p Path) SortedByTimestamp() []Entry {
	entries := make([]Entry, 0, len(p))
	for id, kf := range p {
		entries = append(entries, Entry{ID: id, Keyframe: kf})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Keyframe.Timestamp != entries[j].Keyframe.Timestamp {
			return entries[i].Keyframe.Timestamp < entries[j].Keyframe.Timestamp
		}
		return entries[i].ID < entries[j].ID
	})

	return entries
}

// TimeBounds returns the minimum and maximum timestamp across the path.
// An empty path reports (0, 0).
func (p Path) TimeBounds() (minTime, maxTime float64) {
	first := true
	for _, kf := range p {
		if first {
			minTime, maxTime = kf.Timestamp, kf.Timestamp
			first = false
			continue
		}
		if kf.Timestamp < minTime {
			minTime = kf.Timestamp
		}
		if kf.Timestamp > maxTime {
			maxTime = kf.Timestamp
		}
	}
	return minTime, maxTime
}
