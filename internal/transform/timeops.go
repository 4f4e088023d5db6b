package transform

import (
	"fmt"

	"github.com/ivlev/campath/internal/camera"
	"github.com/ivlev/campath/internal/units"
)

// Speed divides every timestamp by multiplier, so a multiplier of 2 plays the
// path twice as fast. Frames are resynced to the new timestamps. A zero
// multiplier would produce infinite timestamps and fails with
// camera.ErrInvalidParameter.
func Speed(p camera.Path, multiplier float64) (camera.Path, error) {
	if multiplier == 0 {
		return nil, fmt.Errorf("%w: speed multiplier must not be zero", camera.ErrInvalidParameter)
	}

	out := p.Clone()
	for id, kf := range out {
		kf.Timestamp /= multiplier
		kf.Frame = units.FrameForTimestamp(kf.Timestamp)
		out[id] = kf
	}
	return out, nil
}

// TimeOffset shifts every timestamp by seconds and resyncs frames. Negative
// offsets may produce negative timestamps; that is left to the caller.
func TimeOffset(p camera.Path, seconds float64) camera.Path {
	out := p.Clone()
	for id, kf := range out {
		kf.Timestamp += seconds
		kf.Frame = units.FrameForTimestamp(kf.Timestamp)
		out[id] = kf
	}
	return out
}
