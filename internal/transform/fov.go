// Package transform implements the camera-path transform catalogue.
//
// Every transform is a pure function from a path (plus scalar parameters) to
// a new path: inputs are never mutated, the output key set equals the input
// key set, and no state survives between calls. Arithmetic is unguarded by
// design — FOV and coordinates may leave realistic bounds, rotations wrap by
// plain integer addition.
package transform

import "github.com/ivlev/campath/internal/camera"

// FOVAdd adds v to every keyframe's field of view.
func FOVAdd(p camera.Path, v float64) camera.Path {
	out := p.Clone()
	for id, kf := range out {
		kf.FOV += v
		out[id] = kf
	}
	return out
}

// FOVMultiply multiplies every keyframe's field of view by v.
func FOVMultiply(p camera.Path, v float64) camera.Path {
	out := p.Clone()
	for id, kf := range out {
		kf.FOV *= v
		out[id] = kf
	}
	return out
}

// FOVSet sets every keyframe's field of view to v.
func FOVSet(p camera.Path, v float64) camera.Path {
	out := p.Clone()
	for id, kf := range out {
		kf.FOV = v
		out[id] = kf
	}
	return out
}
