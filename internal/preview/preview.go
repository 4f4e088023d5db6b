// Package preview renders a camera path to a still image: the top-down X/Y
// trace of the path in temporal order, with keyframe markers sized by FOV.
package preview

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/ivlev/campath/internal/camera"
)

var (
	background = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	traceColor = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	startColor = color.RGBA{R: 80, G: 220, B: 120, A: 255}
	endColor   = color.RGBA{R: 240, G: 90, B: 90, A: 255}
	markColor  = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

// Render draws the path's X/Y ground trace onto a width x height canvas.
// The trace is fit to the canvas with a 10% margin, rendered at double
// resolution and downscaled for cleaner lines. An empty path yields a blank
// canvas.
func Render(p camera.Path, width, height int) image.Image {
	const super = 2
	w, h := width*super, height*super

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(canvas, background)

	entries := p.SortedByTimestamp()
	if len(entries) > 0 {
		plot(canvas, entries, w, h)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), xdraw.Over, nil)
	return out
}

// WritePNG encodes an image to a PNG file.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func plot(canvas *image.RGBA, entries []camera.Entry, w, h int) {
	minX, maxX := entries[0].Keyframe.Position.X, entries[0].Keyframe.Position.X
	minY, maxY := entries[0].Keyframe.Position.Y, entries[0].Keyframe.Position.Y
	minFOV, maxFOV := entries[0].Keyframe.FOV, entries[0].Keyframe.FOV
	for _, e := range entries {
		pos := e.Keyframe.Position
		minX, maxX = math.Min(minX, pos.X), math.Max(maxX, pos.X)
		minY, maxY = math.Min(minY, pos.Y), math.Max(maxY, pos.Y)
		minFOV, maxFOV = math.Min(minFOV, e.Keyframe.FOV), math.Max(maxFOV, e.Keyframe.FOV)
	}

	// 10% margin; degenerate ranges (single point, straight line) still map
	// into the canvas.
	margin := 0.1
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	toPixel := func(pos camera.Position) (int, int) {
		px := (pos.X - minX) / spanX
		py := (pos.Y - minY) / spanY
		x := int((margin + px*(1-2*margin)) * float64(w))
		y := int((margin + py*(1-2*margin)) * float64(h))
		return x, y
	}

	for i := 1; i < len(entries); i++ {
		x0, y0 := toPixel(entries[i-1].Keyframe.Position)
		x1, y1 := toPixel(entries[i].Keyframe.Position)
		line(canvas, x0, y0, x1, y1, traceColor)
	}

	fovSpan := maxFOV - minFOV
	for i, e := range entries {
		x, y := toPixel(e.Keyframe.Position)

		// Marker radius tracks FOV: wider keyframes draw bigger dots.
		radius := 3.0
		if fovSpan > 0 {
			radius += 4 * (e.Keyframe.FOV - minFOV) / fovSpan
		}

		c := markColor
		switch i {
		case 0:
			c = startColor
		case len(entries) - 1:
			c = endColor
		}
		disc(canvas, x, y, int(radius), c)
	}
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// line draws a 1px segment with the integer Bresenham walk.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func disc(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
