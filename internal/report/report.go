// Package report renders an HTML summary of a camera path: FOV and position
// curves over time plus the X/Y ground trace, as self-contained echarts
// pages.
package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ivlev/campath/internal/camera"
	"github.com/ivlev/campath/internal/transform"
)

// Write renders the report for a path to an HTML file.
func Write(p camera.Path, outPath string) error {
	entries := p.SortedByTimestamp()
	stats := transform.Stats(p)

	page := components.NewPage()
	page.PageTitle = "Camera Path Report"
	page.AddCharts(
		fovChart(entries, stats),
		positionChart(entries),
		traceChart(entries),
	)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func timeAxis(entries []camera.Entry) []string {
	axis := make([]string, len(entries))
	for i, e := range entries {
		axis[i] = fmt.Sprintf("%.2f", e.Keyframe.Timestamp)
	}
	return axis
}

func fovChart(entries []camera.Entry, stats transform.PathStats) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Field of View",
			Subtitle: fmt.Sprintf("keyframes=%d duration=%.2fs", stats.Keyframes, stats.Duration),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "FOV (deg)"}),
	)

	data := make([]opts.LineData, len(entries))
	for i, e := range entries {
		data[i] = opts.LineData{Value: e.Keyframe.FOV}
	}

	line.SetXAxis(timeAxis(entries)).AddSeries("fov", data)
	return line
}

func positionChart(entries []camera.Entry) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "900px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Position"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)"}),
	)

	xs := make([]opts.LineData, len(entries))
	ys := make([]opts.LineData, len(entries))
	zs := make([]opts.LineData, len(entries))
	for i, e := range entries {
		xs[i] = opts.LineData{Value: e.Keyframe.Position.X}
		ys[i] = opts.LineData{Value: e.Keyframe.Position.Y}
		zs[i] = opts.LineData{Value: e.Keyframe.Position.Z}
	}

	line.SetXAxis(timeAxis(entries)).
		AddSeries("x", xs).
		AddSeries("y", ys).
		AddSeries("z", zs)
	return line
}

func traceChart(entries []camera.Entry) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "600px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Ground Trace (X/Y)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y"}),
	)

	data := make([]opts.ScatterData, len(entries))
	for i, e := range entries {
		data[i] = opts.ScatterData{Value: []interface{}{e.Keyframe.Position.X, e.Keyframe.Position.Y}}
	}

	scatter.AddSeries("path", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	return scatter
}
