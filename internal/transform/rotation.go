package transform

import (
	"github.com/ivlev/campath/internal/camera"
	"github.com/ivlev/campath/internal/units"
)

// RotationOffset adds the same (pitch, yaw, roll) delta to every keyframe's
// rotation. When useDegrees is set the deltas are given in degrees and
// converted to engine units once, up front. No angle normalization is
// performed; components wrap by integer addition.
func RotationOffset(p camera.Path, pitch, yaw, roll int, useDegrees bool) camera.Path {
	dp, dy, dr := pitch, yaw, roll
	if useDegrees {
		dp = units.DegreesToEngineUnits(float64(pitch))
		dy = units.DegreesToEngineUnits(float64(yaw))
		dr = units.DegreesToEngineUnits(float64(roll))
	}

	out := p.Clone()
	for id, kf := range out {
		kf.Rotation.Pitch += dp
		kf.Rotation.Yaw += dy
		kf.Rotation.Roll += dr
		out[id] = kf
	}
	return out
}
