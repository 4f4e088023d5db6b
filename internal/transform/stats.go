package transform

import "github.com/ivlev/campath/internal/camera"

// PathStats summarizes a path without mutating it. The JSON shape matches
// the stats blob the original camera files tooling emitted.
type PathStats struct {
	Keyframes int     `json:"keyframes"`
	Duration  float64 `json:"duration"`
	MinTime   float64 `json:"min_time"`
	MaxTime   float64 `json:"max_time"`
}

// Stats computes keyframe count and the timestamp range. An empty path
// reports all zeros.
func Stats(p camera.Path) PathStats {
	minTime, maxTime := p.TimeBounds()
	return PathStats{
		Keyframes: len(p),
		Duration:  maxTime - minTime,
		MinTime:   minTime,
		MaxTime:   maxTime,
	}
}
