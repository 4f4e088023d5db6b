package transform

import (
	"testing"

	"github.com/ivlev/campath/internal/camera"
)

func TestRotationOffsetEngineUnits(t *testing.T) {
	path := camera.Path{
		"A": {Rotation: camera.Rotation{Pitch: 100, Yaw: -50, Roll: 0}},
		"B": {Rotation: camera.Rotation{Pitch: 0, Yaw: 0, Roll: 1000}},
	}

	out := RotationOffset(path, 10, 20, 30, false)

	if got := out["A"].Rotation; got.Pitch != 110 || got.Yaw != -30 || got.Roll != 30 {
		t.Errorf("A rotation = %+v", got)
	}
	if got := out["B"].Rotation; got.Pitch != 10 || got.Yaw != 20 || got.Roll != 1030 {
		t.Errorf("B rotation = %+v", got)
	}
}

func TestRotationOffsetDegrees(t *testing.T) {
	// 1 degree converts to trunc(182.04) = 182 engine units, applied to
	// every keyframe.
	path := twoKeyframePath()
	out := RotationOffset(path, 1, 0, 0, true)

	for id := range out {
		if got := out[id].Rotation.Pitch; got != 182 {
			t.Errorf("%s pitch = %d, want 182", id, got)
		}
	}

	out = RotationOffset(path, 0, -2, 90, true)
	if got := out["A"].Rotation.Yaw; got != -364 {
		t.Errorf("yaw = %d, want -364", got)
	}
	if got := out["A"].Rotation.Roll; got != 16383 {
		t.Errorf("roll = %d, want 16383", got)
	}
}

func TestRotationOffsetNoNormalization(t *testing.T) {
	// Angles wrap by plain addition; nothing clamps into a canonical range.
	path := camera.Path{"A": {Rotation: camera.Rotation{Yaw: 65000}}}
	out := RotationOffset(path, 0, 5000, 0, false)

	if got := out["A"].Rotation.Yaw; got != 70000 {
		t.Errorf("yaw = %d, want 70000", got)
	}
}
