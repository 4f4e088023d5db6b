package transform

import (
	"fmt"

	"github.com/ivlev/campath/internal/camera"
)

// Smooth averages position and FOV over a centered sliding window of
// windowSize keyframes in timestamp order. Edge windows are shorter, not
// padded, so the first and last keyframes average over fewer neighbors.
// Rotation, timestamp, frame and weight pass through untouched, and each
// keyframe keeps its id.
//
// A windowSize of 0 or 1 degenerates to a one-element window and is the
// identity on position and FOV. Negative sizes fail with
// camera.ErrInvalidParameter.
func Smooth(p camera.Path, windowSize int) (camera.Path, error) {
	if windowSize < 0 {
		return nil, fmt.Errorf("%w: window size must not be negative: %d", camera.ErrInvalidParameter, windowSize)
	}

	entries := p.SortedByTimestamp()
	half := windowSize / 2

	out := make(camera.Path, len(entries))
	for i, e := range entries {
		start := i - half
		if start < 0 {
			start = 0
		}
		end := i + half + 1
		if end > len(entries) {
			end = len(entries)
		}

		var sumX, sumY, sumZ, sumFOV float64
		for j := start; j < end; j++ {
			kf := entries[j].Keyframe
			sumX += kf.Position.X
			sumY += kf.Position.Y
			sumZ += kf.Position.Z
			sumFOV += kf.FOV
		}
		count := float64(end - start)

		kf := e.Keyframe
		kf.Position = camera.Position{X: sumX / count, Y: sumY / count, Z: sumZ / count}
		kf.FOV = sumFOV / count
		out[e.ID] = kf
	}

	return out, nil
}
