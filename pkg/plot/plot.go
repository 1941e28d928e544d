// Package plot renders timing function graphs to PNG images. It backs
// the "motion plot" developer command and is handy in documentation
// pipelines; the animation engine itself never imports it.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/go-drift/motion/pkg/timing"
)

const (
	// supersample is the oversampling factor. The curve is drawn at
	// supersample times the requested size and downscaled, which reads
	// far better than naive single-pixel plotting.
	supersample = 3

	// margin is the fraction of the image left around the graph area.
	margin = 0.1
)

var (
	background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	gridColor  = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}
	curveColor = color.RGBA{0x1a, 0x6b, 0xcc, 0xff}
)

// Render draws f over the input range [0, 1] into a width×height image.
// The vertical range grows to fit curves that overshoot [0, 1]; grid
// lines mark progress 0 and 1 on both axes.
func Render(f timing.Func, width, height int) *image.RGBA {
	w := width * supersample
	h := height * supersample

	samples := make([]float64, w+1)
	minY, maxY := 0.0, 1.0
	for i := range samples {
		y := f(float64(i) / float64(w))
		samples[i] = y
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	big := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(big, big.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	// Map graph coordinates to pixels, leaving a margin on every side.
	inset := func(size int) (lo, span float64) {
		m := float64(size) * margin
		return m, float64(size) - 2*m
	}
	x0, xSpan := inset(w)
	y0, ySpan := inset(h)
	toPx := func(t, y float64) (int, int) {
		px := x0 + t*xSpan
		py := y0 + (maxY-y)/(maxY-minY)*ySpan
		return int(px), int(py)
	}

	for _, gy := range []float64{0, 1} {
		_, py := toPx(0, gy)
		hline(big, py, gridColor)
	}
	for _, gt := range []float64{0, 1} {
		px, _ := toPx(gt, 0)
		vline(big, px, gridColor)
	}

	// Connect successive samples with vertical runs so step curves stay
	// visually continuous.
	_, prevY := toPx(0, samples[0])
	for i := 1; i < len(samples); i++ {
		px, py := toPx(float64(i)/float64(w), samples[i])
		drawSegment(big, px, prevY, py, curveColor)
		prevY = py
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)
	return out
}

// WritePNG renders f and writes the result to path.
func WritePNG(path string, f timing.Func, width, height int) error {
	img := Render(f, width, height)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func hline(img *image.RGBA, y int, c color.RGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	for x := 0; x < img.Bounds().Dx(); x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x int, c color.RGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	for y := 0; y < img.Bounds().Dy(); y++ {
		img.SetRGBA(x, y, c)
	}
}

// drawSegment draws a thick vertical run at column x spanning the gap
// between the previous and current sample. Samples are one pixel apart
// horizontally, so filling the vertical gap keeps step curves connected.
func drawSegment(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	lo, hi := y0, y1
	if lo > hi {
		lo, hi = hi, lo
	}
	for y := lo; y <= hi; y++ {
		dot(img, x, y, c)
	}
}

func dot(img *image.RGBA, x, y int, c color.RGBA) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			px, py := x+dx, y+dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, c)
			}
		}
	}
}
