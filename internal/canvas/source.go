package canvas

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
)

// Load decodes a PNG, JPEG or GIF file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("decode %s: empty image", path)
	}
	return img, nil
}

// SampleSize is the side length of the built-in image.
const SampleSize = 192

// Sample returns the built-in card: a rounded orange square with diagonal
// stripes on a transparent background, so blur direction is easy to read.
func Sample() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, SampleSize, SampleSize))
	from := color.RGBA{R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF}
	to := color.RGBA{R: 0xFF, G: 0x5F, B: 0x1F, A: 0xFF}

	const (
		margin = 16.0
		radius = 36.0
		stripe = 24
	)
	lo, hi := margin, SampleSize-margin
	for y := 0; y < SampleSize; y++ {
		for x := 0; x < SampleSize; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			if !insideRounded(fx, fy, lo, hi, radius) {
				continue
			}
			c := lerpRGBA(from, to, (fx+fy)/(2*SampleSize))
			if (x+y)/stripe%2 == 0 {
				c = lerpRGBA(c, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, 0.55)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func insideRounded(x, y, lo, hi, r float64) bool {
	if x < lo || x >= hi || y < lo || y >= hi {
		return false
	}
	cx := math.Max(lo+r, math.Min(hi-r, x))
	cy := math.Max(lo+r, math.Min(hi-r, y))
	return math.Hypot(x-cx, y-cy) <= r
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p) + (float64(q)-float64(p))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
