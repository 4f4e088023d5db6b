package camera

import "errors"

// Error kinds for the transform surface. Callers match with errors.Is; the
// wrapped message names the offending id, field or value.
var (
	// ErrMalformedInput means the supplied text does not deserialize into
	// the expected keyframe-collection shape (missing or mistyped field).
	ErrMalformedInput = errors.New("malformed camera data")

	// ErrInvalidParameter means a transform parameter is semantically
	// invalid, e.g. an unknown mirror axis or a zero speed multiplier.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrSerialization means in-memory data failed to serialize. It should
	// not occur for well-formed keyframes and indicates a defect.
	ErrSerialization = errors.New("serialization failed")
)
