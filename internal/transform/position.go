package transform

import "github.com/ivlev/campath/internal/camera"

// PositionOffset translates every keyframe by (dx, dy, dz).
func PositionOffset(p camera.Path, dx, dy, dz float64) camera.Path {
	out := p.Clone()
	for id, kf := range out {
		kf.Position.X += dx
		kf.Position.Y += dy
		kf.Position.Z += dz
		out[id] = kf
	}
	return out
}

// PositionScale scales every keyframe's position componentwise. Negative
// factors are allowed and mirror the path around the origin on that axis.
func PositionScale(p camera.Path, sx, sy, sz float64) camera.Path {
	out := p.Clone()
	for id, kf := range out {
		kf.Position.X *= sx
		kf.Position.Y *= sy
		kf.Position.Z *= sz
		out[id] = kf
	}
	return out
}
