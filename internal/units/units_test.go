package units

import "testing"

func TestDegreesToEngineUnits(t *testing.T) {
	tests := []struct {
		degrees float64
		want    int
	}{
		{0, 0},
		{1, 182},   // 182.04 truncates to 182
		{2, 364},   // 364.08 truncates
		{-1, -182}, // truncation toward zero, not floor
		{0.5, 91},
		{90, 16383}, // 16383.6 truncates
		{180, 32767},
	}

	for _, tt := range tests {
		got := DegreesToEngineUnits(tt.degrees)
		if got != tt.want {
			t.Errorf("DegreesToEngineUnits(%f) = %d, want %d", tt.degrees, got, tt.want)
		}
	}
}

func TestFrameForTimestamp(t *testing.T) {
	tests := []struct {
		timestamp float64
		want      int
	}{
		{0, 0},
		{1, 30},
		{0.5, 15},
		{1.0 / 3.0, 10},
		{0.016, 0},  // 0.48 rounds down
		{0.017, 1},  // 0.51 rounds up
		{-1, -30},   // negative timestamps map to negative frames
		{2.025, 61}, // 60.75 rounds up
	}

	for _, tt := range tests {
		got := FrameForTimestamp(tt.timestamp)
		if got != tt.want {
			t.Errorf("FrameForTimestamp(%f) = %d, want %d", tt.timestamp, got, tt.want)
		}
	}
}
