package canvas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ident = Transform{ScaleX: 1, ScaleY: 1}
)

func lit(img *image.RGBA, x, y int) bool {
	r, g, b := pixelAt(img, x, y)
	return r != 0 || g != 0 || b != 0
}

func TestComposePassThroughCentresImage(t *testing.T) {
	st := NewStage(solid(4, 4, white))
	out := st.Compose(40, 40, ident, Uniforms{})

	// 0.6 * 40 = 24 px square centred: 8..32.
	if !lit(out, 20, 20) || !lit(out, 8, 8) || !lit(out, 31, 31) {
		t.Fatal("expected image pixels inside the centred square")
	}
	if lit(out, 7, 20) || lit(out, 32, 20) || lit(out, 20, 7) {
		t.Fatal("expected black outside the centred square")
	}
}

func TestComposeOffsetIsScaledAboutCentre(t *testing.T) {
	st := NewStage(solid(4, 4, white))

	out := st.Compose(40, 40, Transform{OffsetX: 10, ScaleX: 1, ScaleY: 1}, Uniforms{})
	if lit(out, 10, 20) || !lit(out, 35, 20) {
		t.Fatal("expected image shifted right by 10px")
	}

	// Half scale: 12 px wide, centre at 20 + 10*0.5 = 25 -> 19..31.
	out = st.Compose(40, 40, Transform{OffsetX: 10, ScaleX: 0.5, ScaleY: 0.5}, Uniforms{})
	if !lit(out, 25, 20) || lit(out, 17, 20) || lit(out, 32, 20) {
		t.Fatal("expected half-size image centred at x=25")
	}
}

func TestMotionBlurSmearsAlongAngle(t *testing.T) {
	st := NewStage(solid(4, 4, white))
	out := st.Compose(40, 40, ident, Uniforms{Effect: EffectMotion, Strength: 0.5, Angle: 0})

	if !lit(out, 5, 20) {
		t.Fatal("expected horizontal smear left of the image")
	}
	if lit(out, 20, 4) {
		t.Fatal("expected no vertical smear for a horizontal blur")
	}
	r, _, _ := pixelAt(out, 9, 20)
	if r == 255 {
		t.Fatal("expected the edge to be softened")
	}
}

func TestMotionBlurNegativeStrengthIsSymmetric(t *testing.T) {
	a := NewStage(solid(4, 4, white)).Compose(40, 40, ident, Uniforms{Effect: EffectMotion, Strength: 0.3})
	b := NewStage(solid(4, 4, white)).Compose(40, 40, ident, Uniforms{Effect: EffectMotion, Strength: -0.3})
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("expected sign of strength not to change the result")
	}
}

func TestZoomBlurChangesStripedImage(t *testing.T) {
	st := NewStage(Sample())
	plain := st.Compose(80, 80, ident, Uniforms{Effect: EffectZoom})
	plainPix := append([]byte(nil), plain.Pix...)

	blurred := st.Compose(80, 80, ident, Uniforms{Effect: EffectZoom, Strength: 0.8})
	if bytes.Equal(plainPix, blurred.Pix) {
		t.Fatal("expected zoom blur to change the striped image")
	}
	if lit(blurred, 2, 2) {
		t.Fatal("expected zoom blur to stay inside the bounding rect")
	}
}

func TestComposeDisabledEffectIgnoresStrength(t *testing.T) {
	st := NewStage(Sample())
	a := append([]byte(nil), st.Compose(60, 60, ident, Uniforms{}).Pix...)
	b := st.Compose(60, 60, ident, Uniforms{Effect: EffectNone, Strength: 1, Angle: 2})
	if !bytes.Equal(a, b.Pix) {
		t.Fatal("expected EffectNone to pass the image through")
	}
}

func TestRenderHalfBlockTrueColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})

	out := NewRenderer(ColorTrue).Render(img, 1, 1)
	for _, want := range []string{"\x1b[38;2;255;0;0m", "\x1b[48;2;0;0;255m", "▀", ansiReset} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRenderASCII(t *testing.T) {
	out := NewRenderer(ColorOff).Render(solid(3, 4, white), 3, 2)
	if out != "@@@\n@@@" {
		t.Fatalf("unexpected ascii render %q", out)
	}
}

func TestRenderANSI16UsesBasicCodes(t *testing.T) {
	out := NewRenderer(ColorANSI16).Render(solid(1, 2, white), 1, 1)
	if !strings.Contains(out, "\x1b[97m") || !strings.Contains(out, "\x1b[107m") {
		t.Fatalf("expected bright white fg/bg, got %q", out)
	}
}

func TestColorModeFromEnv(t *testing.T) {
	env := func(vars map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}
	cases := []struct {
		vars map[string]string
		want ColorMode
	}{
		{map[string]string{"NO_COLOR": "", "COLORTERM": "truecolor"}, ColorOff},
		{map[string]string{"COLORTERM": "24bit", "TERM": "xterm"}, ColorTrue},
		{map[string]string{"TERM": "xterm-256color"}, ColorANSI256},
		{map[string]string{"TERM": "dumb"}, ColorOff},
		{map[string]string{"TERM": "xterm"}, ColorANSI16},
	}
	for _, c := range cases {
		if got := colorModeFromEnv(env(c.vars)); got != c.want {
			t.Fatalf("env %v: expected %v, got %v", c.vars, c.want, got)
		}
	}
}

func TestParseColorMode(t *testing.T) {
	if m, err := ParseColorMode("256"); err != nil || m != ColorANSI256 {
		t.Fatalf("expected 256 mode, got %v %v", m, err)
	}
	if m, err := ParseColorMode("none"); err != nil || m != ColorOff {
		t.Fatalf("expected color off, got %v %v", m, err)
	}
	if _, err := ParseColorMode("sepia"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestLoadDecodesPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solid(3, 2, white)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("unexpected bounds %v", b)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSampleHasTransparentCorners(t *testing.T) {
	img := Sample().(*image.RGBA)
	if img.RGBAAt(0, 0).A != 0 {
		t.Fatal("expected transparent corner")
	}
	if img.RGBAAt(SampleSize/2, SampleSize/2).A != 255 {
		t.Fatal("expected opaque centre")
	}
}
