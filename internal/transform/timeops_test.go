package transform

import (
	"errors"
	"testing"

	"github.com/ivlev/campath/internal/camera"
)

func TestSpeed(t *testing.T) {
	path := twoKeyframePath()
	out, err := Speed(path, 2)
	if err != nil {
		t.Fatalf("Speed failed: %v", err)
	}

	assertSameKeys(t, path, out)
	assertClose(t, "B.Timestamp", out["B"].Timestamp, 0.5)
	if out["B"].Frame != 15 {
		t.Errorf("B frame = %d, want 15", out["B"].Frame)
	}
	assertClose(t, "A.Timestamp", out["A"].Timestamp, 0)
	if out["A"].Frame != 0 {
		t.Errorf("A frame = %d, want 0", out["A"].Frame)
	}
}

func TestSpeedSlowDown(t *testing.T) {
	path := twoKeyframePath()
	out, err := Speed(path, 0.5)
	if err != nil {
		t.Fatalf("Speed failed: %v", err)
	}

	assertClose(t, "B.Timestamp", out["B"].Timestamp, 2)
	if out["B"].Frame != 60 {
		t.Errorf("B frame = %d, want 60", out["B"].Frame)
	}
}

func TestSpeedZero(t *testing.T) {
	_, err := Speed(twoKeyframePath(), 0)
	if err == nil {
		t.Fatal("Expected error for zero multiplier")
	}
	if !errors.Is(err, camera.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestTimeOffset(t *testing.T) {
	path := twoKeyframePath()
	out := TimeOffset(path, 2.5)

	assertClose(t, "A.Timestamp", out["A"].Timestamp, 2.5)
	assertClose(t, "B.Timestamp", out["B"].Timestamp, 3.5)
	if out["A"].Frame != 75 {
		t.Errorf("A frame = %d, want 75", out["A"].Frame)
	}
	if out["B"].Frame != 105 {
		t.Errorf("B frame = %d, want 105", out["B"].Frame)
	}
}

func TestTimeOffsetNegative(t *testing.T) {
	// Negative timestamps are allowed; the frame goes negative with them.
	path := twoKeyframePath()
	out := TimeOffset(path, -2)

	assertClose(t, "A.Timestamp", out["A"].Timestamp, -2)
	if out["A"].Frame != -60 {
		t.Errorf("A frame = %d, want -60", out["A"].Frame)
	}
}
