// Package units holds the angular and temporal conversion constants shared by
// the transforms.
package units

import "math"

const (
	// EngineUnitsPerDegree converts degrees to the engine's integer
	// angular unit.
	EngineUnitsPerDegree = 182.04

	// PathFPS is the fixed frame rate of camera path files. Keyframe
	// frame indices are always derived from timestamps at this rate.
	PathFPS = 30
)

// DegreesToEngineUnits converts degrees to engine angular units, truncating
// toward zero. The camera files in the wild were produced with a truncating
// conversion, so 1 degree maps to 182 units, not 183; keep truncation so
// offsets match files edited by the original tool.
func DegreesToEngineUnits(degrees float64) int {
	return int(degrees * EngineUnitsPerDegree)
}

// FrameForTimestamp returns the frame index for a timestamp at PathFPS.
// Every transform that rewrites a timestamp must rewrite the frame through
// this function in the same pass, or the two fields drift.
func FrameForTimestamp(timestamp float64) int {
	return int(math.Round(timestamp * PathFPS))
}
