package plot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/motion/pkg/timing"
)

func TestRenderSize(t *testing.T) {
	img := Render(timing.Linear, 120, 80)
	b := img.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("bounds = %dx%d, want 120x80", b.Dx(), b.Dy())
	}
}

func TestRenderDrawsCurve(t *testing.T) {
	img := Render(timing.Linear, 64, 64)

	// The curve must leave non-background pixels behind.
	colored := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				colored++
			}
		}
	}
	if colored == 0 {
		t.Error("rendered image is blank")
	}
}

func TestRenderHandlesOvershoot(t *testing.T) {
	// A curve reaching outside [0, 1] must not panic or write outside
	// the image; the vertical range grows instead.
	overshoot := func(v float64) float64 { return 1.5 * v }
	img := Render(overshoot, 64, 64)
	if img.Bounds().Dx() != 64 {
		t.Error("unexpected bounds")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	if err := WritePNG(path, timing.EaseInOut(0.5), 64, 64); err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("decoded bounds = %v, want 64x64", img.Bounds())
	}
}
