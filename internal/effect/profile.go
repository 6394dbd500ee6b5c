package effect

import (
	"fmt"
	"strings"

	"github.com/olivier-w/blurdrag/internal/spring"
)

// Variant selects which layer effect the host runs.
type Variant uint8

const (
	Motion Variant = iota
	Zoom
)

func (v Variant) String() string {
	switch v {
	case Motion:
		return "motion"
	case Zoom:
		return "zoom"
	}
	return "unknown"
}

// ParseVariant accepts the names printed by Variant.String.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "motion", "motion-blur":
		return Motion, nil
	case "zoom", "zoom-blur":
		return Zoom, nil
	}
	return 0, fmt.Errorf("unknown variant %q (want motion or zoom)", s)
}

// ScaleMove is a scale retarget applied on a gesture phase.
type ScaleMove struct {
	Spring spring.Parameters
	Target spring.Point
}

// Profile is everything that differs between the demo variants.
type Profile struct {
	Variant Variant
	// Manual disables the policy; blur and angle come from SetBlur and
	// SetAngle instead.
	Manual bool

	RestingPosition spring.Point
	RestingScale    spring.Point
	RestingBlur     float64

	// Initial spring for all three animators.
	Spring spring.Parameters

	DragPosition    spring.Parameters
	ReleasePosition spring.Parameters
	DragScale       *ScaleMove
	ReleaseScale    *ScaleMove

	// DerivedScale is used when the policy retargets scale.
	DerivedScale spring.Parameters
	Blur         spring.Parameters

	// BlurRange bounds the manual blur slider.
	BlurRange [2]float64
	BlurStep  float64

	Policy Policy
}

var (
	snappy = spring.NewParameters(0.92, 0.2)
	loose  = spring.NewParameters(0.72, 0.7)
)

// MotionProfile tracks the finger closely, squashes and smears the image
// along its velocity, and lets it swing back to a corner on release.
func MotionProfile(t Tuning) Profile {
	rest := spring.Pt(1, 1)
	return Profile{
		Variant:         Motion,
		RestingPosition: spring.Pt(0.15, 0.85),
		RestingScale:    rest,
		Spring:          snappy,
		DragPosition:    snappy,
		ReleasePosition: loose,
		ReleaseScale:    &ScaleMove{Spring: snappy, Target: rest},
		DerivedScale:    spring.NewParameters(0.45, 0.52),
		Blur:            snappy,
		BlurRange:       [2]float64{0, 0.1},
		BlurStep:        0.001,
		Policy: MotionBlur{
			BlurFactor:   t.BlurFactor,
			ScaleFactor:  t.ScaleFactor,
			RestingScale: rest,
		},
	}
}

// ZoomProfile grows the image to full size while held and blurs it
// radially as it shrinks back on release.
func ZoomProfile(t Tuning) Profile {
	rest := spring.Pt(0.5, 0.5)
	return Profile{
		Variant:         Zoom,
		RestingPosition: spring.Pt(0, 0),
		RestingScale:    rest,
		Spring:          snappy,
		DragPosition:    snappy,
		ReleasePosition: loose,
		DragScale: &ScaleMove{
			Spring: spring.NewParameters(0.8, 0.5),
			Target: spring.Pt(1, 1),
		},
		ReleaseScale: &ScaleMove{
			Spring: spring.NewParameters(0.95, 0.25),
			Target: rest,
		},
		Blur:      snappy,
		BlurRange: [2]float64{0, 1},
		BlurStep:  0.01,
		Policy:    ZoomBlur{BlurFactor: t.ZoomBlurFactor},
	}
}

// DebugProfile turns p into a manual view: only position is animated and
// the effect uniforms are set by hand.
func DebugProfile(p Profile) Profile {
	p.Manual = true
	p.RestingPosition = spring.Pt(0, 0)
	p.DragScale = nil
	p.ReleaseScale = nil
	return p
}

// ProfileFor builds the profile for a variant.
func ProfileFor(v Variant, debug bool, t Tuning) Profile {
	var p Profile
	switch v {
	case Zoom:
		p = ZoomProfile(t)
	default:
		p = MotionProfile(t)
	}
	if debug {
		p = DebugProfile(p)
	}
	return p
}
