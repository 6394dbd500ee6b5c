package effect

import (
	"math"

	"github.com/olivier-w/blurdrag/internal/spring"
)

// Tuning holds the empirically chosen feel constants. They have no
// derivation; change them by eye.
type Tuning struct {
	// ScaleFactor shrinks each axis by the speed along the other axis.
	ScaleFactor float64
	// BlurFactor converts average drag speed into motion blur strength.
	BlurFactor float64
	// ZoomBlurFactor converts scale speed into zoom blur strength.
	ZoomBlurFactor float64
}

// DefaultTuning returns the constants the demo ships with.
func DefaultTuning() Tuning {
	return Tuning{
		ScaleFactor:    0.00005,
		BlurFactor:     0.00007,
		ZoomBlurFactor: 0.1,
	}
}

// Source names the animator whose velocity feeds a Policy.
type Source uint8

const (
	FromPosition Source = iota
	FromScale
)

// Targets are the values a Policy derives from one velocity sample.
type Targets struct {
	Blur     float64
	Angle    float64
	HasAngle bool
	Scale    spring.Point
	HasScale bool
}

// Policy maps a velocity to effect targets. Implementations hold no state.
type Policy interface {
	Source() Source
	Derive(velocity spring.Point, dragging bool) Targets
}

// MotionBlur smears the image along its direction of travel while it is
// being dragged and squashes it across that direction.
type MotionBlur struct {
	BlurFactor   float64
	ScaleFactor  float64
	RestingScale spring.Point
}

func (MotionBlur) Source() Source { return FromPosition }

func (m MotionBlur) Derive(velocity spring.Point, dragging bool) Targets {
	v := sanitize(velocity)
	t := Targets{
		Angle:    math.Atan2(v.Y, v.X),
		HasAngle: true,
		Scale:    m.RestingScale,
		HasScale: true,
	}
	if !dragging {
		return t
	}
	t.Blur = (v.X + v.Y) / 2 * m.BlurFactor
	// Horizontal speed narrows the vertical axis and vice versa.
	t.Scale = spring.Pt(
		1-math.Abs(v.Y)*m.ScaleFactor,
		1-math.Abs(v.X)*m.ScaleFactor,
	)
	return t
}

// ZoomBlur blurs radially while the image snaps back after release. Scale
// is uniform so only the x velocity is read.
type ZoomBlur struct {
	BlurFactor float64
}

func (ZoomBlur) Source() Source { return FromScale }

func (z ZoomBlur) Derive(velocity spring.Point, dragging bool) Targets {
	if dragging {
		return Targets{}
	}
	v := sanitize(velocity)
	return Targets{Blur: math.Abs(v.X) * z.BlurFactor}
}

// sanitize zeroes non-finite components so they never reach atan2.
func sanitize(p spring.Point) spring.Point {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
		p.X = 0
	}
	if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		p.Y = 0
	}
	return p
}
