package effect

import (
	"math"
	"testing"

	"github.com/olivier-w/blurdrag/internal/spring"
	"github.com/stretchr/testify/assert"
)

func defaultMotion() MotionBlur {
	t := DefaultTuning()
	return MotionBlur{BlurFactor: t.BlurFactor, ScaleFactor: t.ScaleFactor, RestingScale: spring.Pt(1, 1)}
}

func TestMotionBlur_AngleFollowsVelocity(t *testing.T) {
	m := defaultMotion()

	got := m.Derive(spring.Pt(100, 0), true)
	assert.True(t, got.HasAngle)
	assert.Equal(t, math.Atan2(0, 100), got.Angle)
	assert.Equal(t, 0.0, got.Angle)

	got = m.Derive(spring.Pt(0, 100), true)
	assert.InDelta(t, math.Pi/2, got.Angle, 1e-12)

	got = m.Derive(spring.Pt(-50, -50), false)
	assert.InDelta(t, -3*math.Pi/4, got.Angle, 1e-12)
}

func TestMotionBlur_WhileDragging(t *testing.T) {
	m := defaultMotion()

	got := m.Derive(spring.Pt(1000, 200), true)
	assert.InDelta(t, 600*0.00007, got.Blur, 1e-12)
	assert.True(t, got.HasScale)
	// Each axis shrinks with the speed on the other axis.
	assert.InDelta(t, 1-200*0.00005, got.Scale.X, 1e-12)
	assert.InDelta(t, 1-1000*0.00005, got.Scale.Y, 1e-12)

	got = m.Derive(spring.Pt(-1000, -200), true)
	assert.InDelta(t, -600*0.00007, got.Blur, 1e-12)
	assert.InDelta(t, 1-200*0.00005, got.Scale.X, 1e-12)
}

func TestMotionBlur_ReleasedReturnsToRest(t *testing.T) {
	m := defaultMotion()
	got := m.Derive(spring.Pt(1000, 2000), false)
	assert.Equal(t, 0.0, got.Blur)
	assert.Equal(t, spring.Pt(1, 1), got.Scale)
}

func TestMotionBlur_NonFiniteVelocityIsZero(t *testing.T) {
	m := defaultMotion()
	got := m.Derive(spring.Pt(math.NaN(), math.Inf(1)), true)
	assert.Equal(t, 0.0, got.Angle)
	assert.Equal(t, 0.0, got.Blur)
	assert.Equal(t, spring.Pt(1, 1), got.Scale)
}

func TestZoomBlur_OnlyAfterRelease(t *testing.T) {
	z := ZoomBlur{BlurFactor: DefaultTuning().ZoomBlurFactor}

	for _, v := range []spring.Point{spring.Pt(0, 0), spring.Pt(3, 3), spring.Pt(-8, -8)} {
		got := z.Derive(v, true)
		assert.Equal(t, 0.0, got.Blur, "velocity %v while dragging", v)
		assert.False(t, got.HasScale)
		assert.False(t, got.HasAngle)
	}

	assert.InDelta(t, 0.3, z.Derive(spring.Pt(3, 3), false).Blur, 1e-12)
	assert.InDelta(t, 0.8, z.Derive(spring.Pt(-8, 1), false).Blur, 1e-12)
	assert.Equal(t, 0.0, z.Derive(spring.Pt(math.NaN(), 0), false).Blur)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("Zoom")
	assert.NoError(t, err)
	assert.Equal(t, Zoom, v)

	v, err = ParseVariant("motion-blur")
	assert.NoError(t, err)
	assert.Equal(t, Motion, v)

	_, err = ParseVariant("radial")
	assert.Error(t, err)
}
