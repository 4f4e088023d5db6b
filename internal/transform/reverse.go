package transform

import (
	"github.com/ivlev/campath/internal/camera"
	"github.com/ivlev/campath/internal/units"
)

// Reverse flips the path's temporal order: each keyframe's timestamp becomes
// maxTime - timestamp + minTime, with the frame resynced. Spatial and
// rotation data stay with their ids; only the place in the temporal order
// changes, so sorting the result by timestamp plays the path backward.
// Applying Reverse twice restores the original timestamps.
func Reverse(p camera.Path) camera.Path {
	minTime, maxTime := p.TimeBounds()

	out := p.Clone()
	for id, kf := range out {
		kf.Timestamp = maxTime - kf.Timestamp + minTime
		kf.Frame = units.FrameForTimestamp(kf.Timestamp)
		out[id] = kf
	}
	return out
}
