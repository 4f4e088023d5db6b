package transform

import (
	"math"
	"testing"

	"github.com/ivlev/campath/internal/camera"
)

// twoKeyframePath builds the canonical two-keyframe test path: A at the
// origin, B ten units out on X one second later.
func twoKeyframePath() camera.Path {
	return camera.Path{
		"A": {FOV: 90, Frame: 0, Position: camera.Position{X: 0, Y: 0, Z: 0}, Timestamp: 0, Weight: 1},
		"B": {FOV: 90, Frame: 30, Position: camera.Position{X: 10, Y: 0, Z: 0}, Timestamp: 1, Weight: 1},
	}
}

func assertSameKeys(t *testing.T, in, out camera.Path) {
	t.Helper()
	if len(in) != len(out) {
		t.Fatalf("Key count changed: %d vs %d", len(in), len(out))
	}
	for id := range in {
		if _, ok := out[id]; !ok {
			t.Fatalf("Key %q missing from output", id)
		}
	}
}

func assertClose(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: got %f, want %f", label, got, want)
	}
}
