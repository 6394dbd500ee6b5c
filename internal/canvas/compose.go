package canvas

import (
	"image"
	"image/draw"
	"math"
)

// Effect selects the layer effect applied to the image.
type Effect uint8

const (
	EffectNone Effect = iota
	EffectMotion
	EffectZoom
)

// Uniforms are the per-frame inputs of the layer effect.
type Uniforms struct {
	Effect Effect
	// Strength is the blur amount. For motion blur it is the smear length
	// as a fraction of the bounding rect's longer side; for zoom blur it is
	// how far toward the rect centre samples are pulled.
	Strength float64
	// Angle is the motion blur direction in radians.
	Angle float64
}

// Transform places the image in the viewport. Offset is in pixels from the
// viewport centre; scale applies about the centre so the offset is scaled
// too.
type Transform struct {
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
}

const (
	// fill is the share of the viewport's short side the image covers at
	// scale 1.
	fill    = 0.6
	maxTaps = 24
)

// Stage composites a source image into a viewport raster.
type Stage struct {
	src   *image.RGBA
	layer *image.RGBA
	out   *image.RGBA
}

// NewStage prepares src for compositing.
func NewStage(src image.Image) *Stage {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, src, b.Min, draw.Src)
	return &Stage{src: rgba}
}

// SourceSize returns the source image dimensions.
func (s *Stage) SourceSize() (int, int) {
	return s.src.Rect.Dx(), s.src.Rect.Dy()
}

// Compose draws the image with tf into a w×h raster, runs the layer effect
// over its bounding rect, and returns the result over black. The returned
// raster is reused by the next call.
func (s *Stage) Compose(w, h int, tf Transform, u Uniforms) *image.RGBA {
	if w <= 0 || h <= 0 {
		return nil
	}
	s.layer = ensure(s.layer, w, h)
	s.out = ensure(s.out, w, h)

	bounds := s.place(w, h, tf)
	if u.Effect == EffectNone || u.Strength == 0 || bounds.Empty() {
		copy(s.out.Pix, s.layer.Pix)
		return s.out
	}

	clear(s.out.Pix)
	switch u.Effect {
	case EffectMotion:
		s.motionBlur(bounds, u.Strength, u.Angle)
	case EffectZoom:
		s.zoomBlur(bounds, u.Strength)
	}
	return s.out
}

// place renders the transformed image into the layer with nearest-neighbor
// sampling and returns its bounding rect, clipped to the layer.
func (s *Stage) place(w, h int, tf Transform) image.Rectangle {
	clear(s.layer.Pix)

	sw, sh := s.SourceSize()
	if sw == 0 || sh == 0 || tf.ScaleX == 0 || tf.ScaleY == 0 {
		return image.Rectangle{}
	}
	side := fill * float64(min(w, h))
	dispW, dispH := side, side
	if sw > sh {
		dispH = side * float64(sh) / float64(sw)
	} else {
		dispW = side * float64(sw) / float64(sh)
	}

	cx, cy := float64(w)/2, float64(h)/2
	centreX := cx + tf.OffsetX*tf.ScaleX
	centreY := cy + tf.OffsetY*tf.ScaleY
	halfW := math.Abs(dispW*tf.ScaleX) / 2
	halfH := math.Abs(dispH*tf.ScaleY) / 2

	rect := image.Rect(
		int(math.Floor(centreX-halfW)), int(math.Floor(centreY-halfH)),
		int(math.Ceil(centreX+halfW)), int(math.Ceil(centreY+halfH)),
	).Intersect(s.layer.Rect)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		v := ((float64(y)+0.5-centreY)/(dispH*tf.ScaleY) + 0.5)
		if v < 0 || v >= 1 {
			continue
		}
		sy := int(v * float64(sh))
		for x := rect.Min.X; x < rect.Max.X; x++ {
			u := ((float64(x)+0.5-centreX)/(dispW*tf.ScaleX) + 0.5)
			if u < 0 || u >= 1 {
				continue
			}
			sx := int(u * float64(sw))
			so := s.src.PixOffset(sx, sy)
			do := s.layer.PixOffset(x, y)
			copy(s.layer.Pix[do:do+4], s.src.Pix[so:so+4])
		}
	}
	return rect
}

// motionBlur averages taps along the blur direction, centred on each pixel.
func (s *Stage) motionBlur(bounds image.Rectangle, strength, angle float64) {
	length := math.Abs(strength) * float64(max(bounds.Dx(), bounds.Dy()))
	taps := tapsFor(length)
	dx, dy := math.Cos(angle)*length, math.Sin(angle)*length

	area := bounds.Inset(-int(math.Ceil(length/2)) - 1).Intersect(s.out.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			var acc [4]int
			for i := 0; i < taps; i++ {
				t := float64(i)/float64(taps-1) - 0.5
				s.accumulate(&acc, float64(x)+dx*t, float64(y)+dy*t)
			}
			s.store(x, y, acc, taps)
		}
	}
}

// zoomBlur averages taps on the segment from each pixel toward the centre
// of the bounding rect.
func (s *Stage) zoomBlur(bounds image.Rectangle, strength float64) {
	strength = math.Min(math.Abs(strength), 1)
	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2
	length := strength * float64(max(bounds.Dx(), bounds.Dy())) / 2
	taps := tapsFor(length)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px, py := float64(x)+0.5-cx, float64(y)+0.5-cy
			var acc [4]int
			for i := 0; i < taps; i++ {
				k := 1 - strength*float64(i)/float64(taps)
				s.accumulate(&acc, cx+px*k-0.5, cy+py*k-0.5)
			}
			s.store(x, y, acc, taps)
		}
	}
}

func (s *Stage) accumulate(acc *[4]int, fx, fy float64) {
	x, y := int(math.Round(fx)), int(math.Round(fy))
	if !(image.Point{X: x, Y: y}).In(s.layer.Rect) {
		return
	}
	o := s.layer.PixOffset(x, y)
	p := s.layer.Pix[o : o+4 : o+4]
	acc[0] += int(p[0])
	acc[1] += int(p[1])
	acc[2] += int(p[2])
	acc[3] += int(p[3])
}

func (s *Stage) store(x, y int, acc [4]int, taps int) {
	o := s.out.PixOffset(x, y)
	p := s.out.Pix[o : o+4 : o+4]
	for i := range p {
		p[i] = uint8(acc[i] / taps)
	}
}

func tapsFor(length float64) int {
	n := int(math.Ceil(length)) + 1
	return max(2, min(maxTaps, n))
}

func ensure(img *image.RGBA, w, h int) *image.RGBA {
	if img != nil && img.Rect.Dx() == w && img.Rect.Dy() == h {
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}
