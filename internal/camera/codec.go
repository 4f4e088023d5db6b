package camera

import (
	"encoding/json"
	"fmt"
)

// rawKeyframe mirrors Keyframe with pointer fields so missing keys are
// distinguishable from zero values during parsing.
type rawKeyframe struct {
	FOV      *float64 `json:"FOV"`
	Frame    *int     `json:"Frame"`
	Position *struct {
		X *float64 `json:"X"`
		Y *float64 `json:"Y"`
		Z *float64 `json:"Z"`
	} `json:"Position"`
	Rotation *struct {
		Pitch *int `json:"Pitch"`
		Roll  *int `json:"Roll"`
		Yaw   *int `json:"Yaw"`
	} `json:"Rotation"`
	Timestamp *float64 `json:"Timestamp"`
	Weight    *float64 `json:"Weight"`
}

func (r *rawKeyframe) missingField() string {
	switch {
	case r.FOV == nil:
		return "FOV"
	case r.Frame == nil:
		return "Frame"
	case r.Position == nil:
		return "Position"
	case r.Position.X == nil:
		return "Position.X"
	case r.Position.Y == nil:
		return "Position.Y"
	case r.Position.Z == nil:
		return "Position.Z"
	case r.Rotation == nil:
		return "Rotation"
	case r.Rotation.Pitch == nil:
		return "Rotation.Pitch"
	case r.Rotation.Roll == nil:
		return "Rotation.Roll"
	case r.Rotation.Yaw == nil:
		return "Rotation.Yaw"
	case r.Timestamp == nil:
		return "Timestamp"
	case r.Weight == nil:
		return "Weight"
	}
	return ""
}

// Parse deserializes a camera path from its canonical JSON form. Every
// keyframe must carry all fields with the right types; a violation fails the
// whole parse with ErrMalformedInput and no partial result.
func Parse(data []byte) (Path, error) {
	var raw map[string]rawKeyframe
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	path := make(Path, len(raw))
	for id, r := range raw {
		if field := r.missingField(); field != "" {
			return nil, fmt.Errorf("%w: keyframe %q is missing field %s", ErrMalformedInput, id, field)
		}
		path[id] = Keyframe{
			FOV:       *r.FOV,
			Frame:     *r.Frame,
			Position:  Position{X: *r.Position.X, Y: *r.Position.Y, Z: *r.Position.Z},
			Rotation:  Rotation{Pitch: *r.Rotation.Pitch, Roll: *r.Rotation.Roll, Yaw: *r.Rotation.Yaw},
			Timestamp: *r.Timestamp,
			Weight:    *r.Weight,
		}
	}

	return path, nil
}

// Serialize renders a path back to its canonical JSON form, pretty-printed
// the way the camera files ship.
func Serialize(p Path) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}
