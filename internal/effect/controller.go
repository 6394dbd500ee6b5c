package effect

import (
	"log"
	"math"
	"time"

	"github.com/olivier-w/blurdrag/internal/spring"
)

// State is the controller's interaction state.
type State uint8

const (
	Idle State = iota
	Dragging
	Releasing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Releasing:
		return "releasing"
	}
	return "unknown"
}

// Frame is what the render host needs for one frame.
type Frame struct {
	Position spring.Point
	Scale    spring.Point
	Blur     float64
	Angle    float64
	Enabled  bool
	Variant  Variant
}

// Host receives frames whenever the animated state changes.
type Host interface {
	Present(Frame)
}

// HostFunc adapts a function to Host.
type HostFunc func(Frame)

func (f HostFunc) Present(fr Frame) { f(fr) }

// Controller owns the animators for one view and turns gesture samples
// into animator targets.
type Controller struct {
	profile Profile
	driver  *spring.Driver
	host    Host

	position *spring.Animator[spring.Point]
	scale    *spring.Animator[spring.Point]
	blur     *spring.Animator[spring.Scalar]

	angle     float64
	state     State
	anchor    spring.Point
	hasAnchor bool
	enabled   bool
	dirty     bool

	onState func(State)
}

// NewController creates a controller at its resting pose. host may be nil.
func NewController(d *spring.Driver, p Profile, host Host) *Controller {
	c := &Controller{
		profile: p,
		driver:  d,
		host:    host,
		enabled: true,
		dirty:   true,
	}
	c.position = spring.NewAnimator(d, p.Spring, p.RestingPosition)
	c.scale = spring.NewAnimator(d, p.Spring, p.RestingScale)
	c.blur = spring.NewAnimator(d, p.Spring, spring.Scalar(p.RestingBlur))
	c.blur.SetEpsilon(1e-5)
	c.scale.SetEpsilon(1e-4)

	c.position.OnChange(func(spring.Point) { c.derive() })
	c.scale.OnChange(func(spring.Point) {
		c.dirty = true
		if p.Policy != nil && p.Policy.Source() == FromScale {
			c.derive()
		}
	})
	c.blur.OnChange(func(spring.Scalar) { c.dirty = true })

	settled := func() { c.maybeIdle() }
	c.position.OnSettled(func(spring.Point) { settled() })
	c.scale.OnSettled(func(spring.Point) { settled() })
	c.blur.OnSettled(func(spring.Scalar) { settled() })
	return c
}

// OnStateChange registers fn to run on every state transition.
func (c *Controller) OnStateChange(fn func(State)) { c.onState = fn }

func (c *Controller) Profile() Profile { return c.profile }
func (c *Controller) State() State     { return c.state }
func (c *Controller) Dragging() bool   { return c.hasAnchor }
func (c *Controller) Enabled() bool    { return c.enabled }

// Position exposes the position animator for inspection.
func (c *Controller) Position() *spring.Animator[spring.Point] { return c.position }

// Scale exposes the scale animator for inspection.
func (c *Controller) Scale() *spring.Animator[spring.Point] { return c.scale }

// Blur exposes the blur animator for inspection.
func (c *Controller) Blur() *spring.Animator[spring.Scalar] { return c.blur }

// Frame returns the current render parameters.
func (c *Controller) Frame() Frame {
	return Frame{
		Position: c.position.Value(),
		Scale:    c.scale.Value(),
		Blur:     c.blur.Value().Float(),
		Angle:    c.angle,
		Enabled:  c.enabled,
		Variant:  c.profile.Variant,
	}
}

// Handle applies one gesture sample.
func (c *Controller) Handle(s Sample) {
	switch s.Phase {
	case Began, Changed:
		if !c.hasAnchor {
			c.anchor = c.position.Value()
			c.hasAnchor = true
			c.setState(Dragging)
		}
		c.position.SetParameters(c.profile.DragPosition)
		c.position.SetTarget(c.anchor.Add(s.Translation))
		c.position.Start()
		if m := c.profile.DragScale; m != nil {
			c.moveScale(*m)
		}

	case Ended:
		c.position.SetParameters(c.profile.ReleasePosition)
		c.position.SetTarget(c.profile.RestingPosition)
		c.position.Start()
		if m := c.profile.ReleaseScale; m != nil {
			c.moveScale(*m)
		}
		c.hasAnchor = false
		c.setState(Releasing)
		c.maybeIdle()
	}
}

// SetEnabled switches between the effect and the plain image. The physics
// are not affected.
func (c *Controller) SetEnabled(on bool) {
	if c.enabled == on {
		return
	}
	c.enabled = on
	c.dirty = true
}

// ToggleEnabled flips SetEnabled and returns the new value.
func (c *Controller) ToggleEnabled() bool {
	c.SetEnabled(!c.enabled)
	return c.enabled
}

// SetBlur sets the blur strength directly in a manual profile, clamped to
// the profile's slider range. It reports whether the value was applied.
func (c *Controller) SetBlur(v float64) bool {
	if !c.profile.Manual {
		return false
	}
	lo, hi := c.profile.BlurRange[0], c.profile.BlurRange[1]
	v = math.Max(lo, math.Min(hi, v))
	if c.profile.BlurStep > 0 {
		v = lo + math.Round((v-lo)/c.profile.BlurStep)*c.profile.BlurStep
	}
	c.blur.Jump(spring.Scalar(v))
	c.dirty = true
	return true
}

// SetAngle sets the blur angle in radians in a manual profile.
func (c *Controller) SetAngle(rad float64) bool {
	if !c.profile.Manual || math.IsNaN(rad) || math.IsInf(rad, 0) {
		return false
	}
	c.angle = math.Remainder(rad, 2*math.Pi)
	c.dirty = true
	return true
}

// Advance integrates every running animator by dt and presents a frame if
// anything changed.
func (c *Controller) Advance(dt time.Duration) bool {
	c.driver.Advance(dt)
	return c.Flush()
}

// Tick is Advance with dt measured from the previous Tick.
func (c *Controller) Tick(now time.Time) bool {
	c.driver.Tick(now)
	return c.Flush()
}

// Animating reports whether frames still need to be driven.
func (c *Controller) Animating() bool {
	return c.driver.Active()
}

// Flush presents the current frame if it changed since the last one.
func (c *Controller) Flush() bool {
	if !c.dirty {
		return false
	}
	c.dirty = false
	if c.host != nil {
		c.host.Present(c.Frame())
	}
	return true
}

func (c *Controller) moveScale(m ScaleMove) {
	c.scale.SetParameters(m.Spring)
	c.scale.SetTarget(m.Target)
	c.scale.Start()
}

// derive runs after every position step, and after every scale step when
// the policy reads scale velocity, so the blur target is zeroed once the
// source comes to rest.
func (c *Controller) derive() {
	c.dirty = true
	if c.profile.Manual || c.profile.Policy == nil {
		return
	}

	var v spring.Point
	switch c.profile.Policy.Source() {
	case FromScale:
		v = c.scale.Velocity()
	default:
		v = c.position.Velocity()
	}

	t := c.profile.Policy.Derive(v, c.hasAnchor)
	if t.HasScale {
		c.scale.SetParameters(c.profile.DerivedScale)
		c.scale.SetTarget(t.Scale)
		c.scale.Start()
	}
	c.blur.SetParameters(c.profile.Blur)
	c.blur.SetTarget(spring.Scalar(t.Blur))
	c.blur.Start()
	if t.HasAngle {
		c.angle = t.Angle
	}
}

func (c *Controller) maybeIdle() {
	if c.hasAnchor {
		return
	}
	if c.position.Running() || c.scale.Running() || c.blur.Running() {
		return
	}
	c.setState(Idle)
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	log.Printf("effect: %s -> %s", c.state, s)
	c.state = s
	if c.onState != nil {
		c.onState(s)
	}
}
