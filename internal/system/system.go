// Package system holds the host-facing helpers: conventional input
// discovery and process resource reporting. The transform core never touches
// the filesystem; all file access lives here and in the CLI.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// FindLatestCamera returns the most recently modified .json camera file in a
// directory.
func FindLatestCamera(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(strings.ToLower(f.Name()), ".json") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no camera files found in %s", dir)
	}

	return latestFile, nil
}

// ListCameras returns every .json camera file in a directory, for batch runs.
func ListCameras(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var cameras []string
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(strings.ToLower(f.Name()), ".json") {
			continue
		}
		cameras = append(cameras, filepath.Join(dir, f.Name()))
	}

	if len(cameras) == 0 {
		return nil, fmt.Errorf("no camera files found in %s", dir)
	}

	return cameras, nil
}

// RunStats is a snapshot of the current process's resource usage.
type RunStats struct {
	CPUPercent float64
	RSSMB      float64
}

// CollectRunStats reads CPU and memory usage for the running process.
func CollectRunStats() (RunStats, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return RunStats{}, err
	}

	cpu, err := proc.CPUPercent()
	if err != nil {
		return RunStats{}, err
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		return RunStats{}, err
	}

	return RunStats{
		CPUPercent: cpu,
		RSSMB:      float64(mem.RSS) / (1024 * 1024),
	}, nil
}
