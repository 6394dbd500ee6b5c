package spring

import "time"

// DefaultMaxStep caps a single integration step.
const DefaultMaxStep = 50 * time.Millisecond

type stepper interface {
	step(dt float64) bool
	active() bool
	markScheduled() bool
	unschedule()
}

// Driver is the shared frame clock. Animators join it on Start and leave
// once they settle or stop.
type Driver struct {
	// MaxStep clamps the dt handed to animators so a stalled frame loop
	// does not teleport anything.
	MaxStep time.Duration
	// Interval is the nominal frame period, used for the first Tick after
	// the driver was idle.
	Interval time.Duration

	steppers []stepper
	last     time.Time
}

// NewDriver creates a driver ticking at fps frames per second.
func NewDriver(fps int) *Driver {
	if fps <= 0 {
		fps = 60
	}
	return &Driver{
		MaxStep:  DefaultMaxStep,
		Interval: time.Second / time.Duration(fps),
	}
}

// Active reports whether any animator is scheduled.
func (d *Driver) Active() bool {
	return len(d.steppers) > 0
}

// Len returns the number of scheduled animators.
func (d *Driver) Len() int { return len(d.steppers) }

func (d *Driver) schedule(s stepper) {
	if !s.markScheduled() {
		return
	}
	d.steppers = append(d.steppers, s)
}

// Tick advances by the time elapsed since the previous Tick.
func (d *Driver) Tick(now time.Time) bool {
	dt := d.Interval
	if !d.last.IsZero() {
		dt = now.Sub(d.last)
	}
	d.last = now
	moved := d.Advance(dt)
	if !d.Active() {
		d.last = time.Time{}
	}
	return moved
}

// Advance steps every scheduled animator by dt and reports whether any
// value changed. Animators started during the pass are stepped from the
// next call on.
func (d *Driver) Advance(dt time.Duration) bool {
	if len(d.steppers) == 0 {
		return false
	}
	if dt > d.MaxStep && d.MaxStep > 0 {
		dt = d.MaxStep
	}
	secs := dt.Seconds()

	n := len(d.steppers)
	moved := false
	for i := 0; i < n; i++ {
		if d.steppers[i].step(secs) {
			moved = true
		}
	}

	kept := d.steppers[:0]
	for _, s := range d.steppers {
		if s.active() {
			kept = append(kept, s)
			continue
		}
		s.unschedule()
	}
	for i := len(kept); i < len(d.steppers); i++ {
		d.steppers[i] = nil
	}
	d.steppers = kept
	return moved
}
