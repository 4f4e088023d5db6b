package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/campath/internal/camera"
)

func TestWrite(t *testing.T) {
	path := camera.Path{
		"A": {FOV: 90, Position: camera.Position{X: 0, Y: 0, Z: 100}, Timestamp: 0},
		"B": {FOV: 95, Position: camera.Position{X: 50, Y: 20, Z: 110}, Timestamp: 1},
		"C": {FOV: 85, Position: camera.Position{X: 100, Y: -10, Z: 90}, Timestamp: 2},
	}

	out := filepath.Join(t.TempDir(), "report.html")
	if err := Write(path, out); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	html := string(data)
	for _, want := range []string{"echarts", "Field of View", "Position", "Ground Trace"} {
		if !strings.Contains(html, want) {
			t.Errorf("Report is missing %q", want)
		}
	}
	t.Logf("Report size: %d bytes", len(data))
}

func TestWriteEmptyPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.html")
	if err := Write(camera.Path{}, out); err != nil {
		t.Fatalf("Write failed on empty path: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("Report file missing: %v", err)
	}
}
