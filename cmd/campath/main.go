package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/campath/internal/camera"
	"github.com/ivlev/campath/internal/pipeline"
	"github.com/ivlev/campath/internal/preview"
	"github.com/ivlev/campath/internal/report"
	"github.com/ivlev/campath/internal/system"
	"github.com/ivlev/campath/internal/transform"
)

func main() {
	// Conventional directories, created if missing
	dirs := []string{"input/cameras", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Camera path file (default: newest .json in input/cameras/)")
	outputPtr := flag.String("output", "", "Output file (default: generated under output/)")
	pipelinePtr := flag.String("pipeline", "", "YAML pipeline file to apply")
	batchPtr := flag.String("batch", "", "Apply the pipeline to every .json file in this directory")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel files in batch mode")

	opPtr := flag.String("op", "", "Single transform: fov_add, fov_multiply, fov_set, position_offset, position_scale, rotation_offset, mirror, smooth, speed, time_offset, reverse")
	valuePtr := flag.Float64("value", 0, "Scalar for fov_add/fov_multiply/fov_set/speed/time_offset")
	xPtr := flag.Float64("x", 0, "X component for position ops")
	yPtr := flag.Float64("y", 0, "Y component for position ops")
	zPtr := flag.Float64("z", 0, "Z component for position ops")
	pitchPtr := flag.Int("pitch", 0, "Pitch delta for rotation_offset")
	yawPtr := flag.Int("yaw", 0, "Yaw delta for rotation_offset")
	rollPtr := flag.Int("roll", 0, "Roll delta for rotation_offset")
	degreesPtr := flag.Bool("degrees", false, "Rotation deltas are degrees, not engine units")
	axisPtr := flag.String("axis", "x", "Mirror axis: x, y, z")
	flipPitchPtr := flag.Bool("flip-pitch", false, "Mirror: negate pitch")
	flipYawPtr := flag.Bool("flip-yaw", false, "Mirror: negate yaw")
	flipRollPtr := flag.Bool("flip-roll", false, "Mirror: negate roll")
	boundedPtr := flag.Bool("bounded", false, "Mirror about the path's own bounds instead of the origin")
	windowPtr := flag.Int("window", 0, "Smoothing window size in keyframes")

	showStatsPtr := flag.Bool("show-stats", false, "Print path statistics for the input and exit")
	previewPtr := flag.String("preview", "", "Write a PNG preview of the result to this path")
	reportPtr := flag.String("report", "", "Write an HTML report of the result to this path")
	runStatsPtr := flag.Bool("stats", false, "Print process resource usage after the run")

	flag.Parse()

	steps, err := resolveSteps(*pipelinePtr, *opPtr, stepFlags{
		value: *valuePtr,
		x:     *xPtr, y: *yPtr, z: *zPtr,
		pitch: *pitchPtr, yaw: *yawPtr, roll: *rollPtr, degrees: *degreesPtr,
		axis: *axisPtr, flipPitch: *flipPitchPtr, flipYaw: *flipYawPtr, flipRoll: *flipRollPtr,
		bounded: *boundedPtr, window: *windowPtr,
	})
	if err != nil {
		log.Fatalf("[-] Error: %v", err)
	}

	if *batchPtr != "" {
		if err := runBatch(*batchPtr, *outputPtr, steps, *workersPtr); err != nil {
			log.Fatalf("[-] Batch failed: %v", err)
		}
		printRunStats(*runStatsPtr)
		return
	}

	inputPath := *inputPtr
	if inputPath == "" {
		latest, err := system.FindLatestCamera("input/cameras")
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a camera .json in input/cameras/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Selected file: %s\n", inputPath)
	}

	path, err := loadCamera(inputPath)
	if err != nil {
		log.Fatalf("[-] Error: %v", err)
	}

	if *showStatsPtr {
		stats := transform.Stats(path)
		fmt.Printf("[*] Keyframes: %d\n", stats.Keyframes)
		fmt.Printf("[*] Duration:  %.3fs (%.3f .. %.3f)\n", stats.Duration, stats.MinTime, stats.MaxTime)
		printRunStats(*runStatsPtr)
		return
	}

	result := path
	if len(steps) > 0 {
		pl := &pipeline.Pipeline{Version: "1.0", Steps: steps}
		result, err = pl.Run(path)
		if err != nil {
			log.Fatalf("[-] Transform failed: %v", err)
		}

		outputPath := *outputPtr
		if outputPath == "" {
			outputPath = defaultOutputPath(inputPath)
		}
		if err := saveCamera(result, outputPath); err != nil {
			log.Fatalf("[-] Error: %v", err)
		}
		fmt.Printf("[*] Wrote %s (%d keyframes, %d steps)\n", outputPath, len(result), len(steps))
	}

	if *previewPtr != "" {
		img := preview.Render(result, 1280, 720)
		if err := preview.WritePNG(img, *previewPtr); err != nil {
			log.Fatalf("[-] Preview failed: %v", err)
		}
		fmt.Printf("[*] Wrote preview: %s\n", *previewPtr)
	}

	if *reportPtr != "" {
		if err := report.Write(result, *reportPtr); err != nil {
			log.Fatalf("[-] Report failed: %v", err)
		}
		fmt.Printf("[*] Wrote report: %s\n", *reportPtr)
	}

	if len(steps) == 0 && *previewPtr == "" && *reportPtr == "" {
		fmt.Println("[!] Nothing to do: pass -op, -pipeline, -show-stats, -preview or -report")
	}

	printRunStats(*runStatsPtr)
}

type stepFlags struct {
	value            float64
	x, y, z          float64
	pitch, yaw, roll int
	degrees          bool
	axis             string
	flipPitch        bool
	flipYaw          bool
	flipRoll         bool
	bounded          bool
	window           int
}

// resolveSteps turns either a pipeline file or the single-op flags into the
// step list to run.
func resolveSteps(pipelinePath, op string, f stepFlags) ([]pipeline.Step, error) {
	if pipelinePath != "" {
		if op != "" {
			return nil, fmt.Errorf("use either -pipeline or -op, not both")
		}
		pl, err := pipeline.ReadPipeline(pipelinePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read pipeline: %w", err)
		}
		fmt.Printf("[*] Pipeline: %s (%d steps)\n", pipelinePath, len(pl.Steps))
		return pl.Steps, nil
	}

	if op == "" {
		return nil, nil
	}

	return []pipeline.Step{{
		Op:         op,
		Value:      f.value,
		X:          f.x,
		Y:          f.y,
		Z:          f.z,
		Pitch:      f.pitch,
		Yaw:        f.yaw,
		Roll:       f.roll,
		UseDegrees: f.degrees,
		Axis:       f.axis,
		FlipPitch:  f.flipPitch,
		FlipYaw:    f.flipYaw,
		FlipRoll:   f.flipRoll,
		Bounded:    f.bounded,
		Window:     f.window,
	}}, nil
}

// runBatch applies the step list to every camera file in a directory, a few
// files at a time.
func runBatch(dir, outDir string, steps []pipeline.Step, workers int) error {
	if len(steps) == 0 {
		return fmt.Errorf("batch mode needs -pipeline or -op")
	}
	if outDir == "" {
		outDir = "output"
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	files, err := system.ListCameras(dir)
	if err != nil {
		return err
	}
	fmt.Printf("[*] Batch: %d files, %d workers\n", len(files), workers)

	var g errgroup.Group
	g.SetLimit(workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			path, err := loadCamera(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			pl := &pipeline.Pipeline{Version: "1.0", Steps: steps}
			result, err := pl.Run(path)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			outPath := filepath.Join(outDir, filepath.Base(file))
			if err := saveCamera(result, outPath); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			fmt.Printf("[*] %s -> %s\n", file, outPath)
			return nil
		})
	}

	return g.Wait()
}

func loadCamera(path string) (camera.Path, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return camera.Parse(data)
}

func saveCamera(p camera.Path, path string) error {
	data, err := camera.Serialize(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func defaultOutputPath(inputPath string) string {
	baseName := filepath.Base(inputPath)
	nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join("output", fmt.Sprintf("%s_%s.json", nameOnly, timestamp))
}

func printRunStats(enabled bool) {
	if !enabled {
		return
	}
	stats, err := system.CollectRunStats()
	if err != nil {
		log.Printf("[!] Could not collect run stats: %v", err)
		return
	}
	fmt.Printf("[*] CPU: %.1f%%  RSS: %.1f MB\n", stats.CPUPercent, stats.RSSMB)
}
