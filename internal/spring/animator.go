package spring

import "time"

// DefaultEpsilon is the settle threshold for both displacement and velocity.
const DefaultEpsilon = 0.001

// DefaultMaxDuration bounds how long an animator may run without settling
// after its last start or retarget.
const DefaultMaxDuration = 10 * time.Second

// Animator drives a value toward a target with a damped spring. It is not
// safe for concurrent use; all calls happen on the frame loop.
type Animator[T Vector[T]] struct {
	driver *Driver
	params Parameters

	value    T
	velocity T
	target   T

	running     bool
	scheduled   bool
	epsilon     float64
	maxDuration time.Duration
	runTime     time.Duration

	cacheDT float64
	cacheP  Parameters
	cache   coefficients

	onChange  func(T)
	onSettled func(T)
}

// NewAnimator creates a stopped animator resting at value.
func NewAnimator[T Vector[T]](d *Driver, params Parameters, value T) *Animator[T] {
	return &Animator[T]{
		driver:      d,
		params:      params.sanitized(),
		value:       value,
		target:      value,
		velocity:    value.Scale(0),
		epsilon:     DefaultEpsilon,
		maxDuration: DefaultMaxDuration,
	}
}

func (a *Animator[T]) Value() T               { return a.value }
func (a *Animator[T]) Velocity() T            { return a.velocity }
func (a *Animator[T]) Target() T              { return a.target }
func (a *Animator[T]) Parameters() Parameters { return a.params }
func (a *Animator[T]) Running() bool          { return a.running }

// OnChange registers fn to run after every integration step.
func (a *Animator[T]) OnChange(fn func(T)) { a.onChange = fn }

// OnSettled registers fn to run once each time the animator comes to rest.
func (a *Animator[T]) OnSettled(fn func(T)) { a.onSettled = fn }

// SetEpsilon overrides the settle threshold. Non-positive values are ignored.
func (a *Animator[T]) SetEpsilon(eps float64) {
	if eps > 0 && isFinite(eps) {
		a.epsilon = eps
	}
}

// SetMaxDuration overrides the safety cutoff. Zero disables it.
func (a *Animator[T]) SetMaxDuration(d time.Duration) {
	if d >= 0 {
		a.maxDuration = d
	}
}

// SetTarget retargets the animator. Velocity is kept so motion stays
// continuous across fast re-drags.
func (a *Animator[T]) SetTarget(target T) {
	if !finite(target) {
		return
	}
	a.target = target
	a.runTime = 0
}

// SetParameters swaps the spring used by subsequent steps.
func (a *Animator[T]) SetParameters(p Parameters) {
	a.params = p.sanitized()
}

// SetSpring is SetParameters with the two values spelled out.
func (a *Animator[T]) SetSpring(dampingRatio, response float64) {
	a.SetParameters(Parameters{DampingRatio: dampingRatio, Response: response})
}

// Start begins integrating on the next driver tick. Calling Start on a
// running animator does nothing.
func (a *Animator[T]) Start() {
	if a.running {
		return
	}
	a.running = true
	a.runTime = 0
	if a.driver != nil {
		a.driver.schedule(a)
	}
}

// Stop halts integration where the value currently is. OnSettled does not
// fire.
func (a *Animator[T]) Stop() {
	a.running = false
}

// Jump places the animator at value with zero velocity and stops it.
func (a *Animator[T]) Jump(value T) {
	a.value = value
	a.target = value
	a.velocity = value.Scale(0)
	a.running = false
}

func (a *Animator[T]) active() bool { return a.running }

func (a *Animator[T]) unschedule() { a.scheduled = false }

func (a *Animator[T]) markScheduled() bool {
	if a.scheduled {
		return false
	}
	a.scheduled = true
	return true
}

// step advances the animator by dt seconds and reports whether the value
// was touched.
func (a *Animator[T]) step(dt float64) bool {
	if !a.running {
		return false
	}
	if dt <= 0 {
		return false
	}

	c := a.coefficients(dt)
	disp := a.value.Sub(a.target)
	value := a.target.Add(disp.Scale(c.posPos)).Add(a.velocity.Scale(c.posVel))
	velocity := disp.Scale(c.velPos).Add(a.velocity.Scale(c.velVel))

	if !finite(value) || !finite(velocity) {
		a.settle()
		return true
	}

	a.value = value
	a.velocity = velocity
	a.runTime += time.Duration(dt * float64(time.Second))

	if a.value.Sub(a.target).Norm() < a.epsilon && a.velocity.Norm() < a.epsilon {
		a.settle()
		return true
	}
	if a.maxDuration > 0 && a.runTime >= a.maxDuration {
		a.settle()
		return true
	}

	if a.onChange != nil {
		a.onChange(a.value)
	}
	return true
}

func (a *Animator[T]) settle() {
	a.value = a.target
	a.velocity = a.target.Scale(0)
	a.running = false
	if a.onChange != nil {
		a.onChange(a.value)
	}
	if a.onSettled != nil {
		a.onSettled(a.value)
	}
}

func (a *Animator[T]) coefficients(dt float64) coefficients {
	if dt != a.cacheDT || a.params != a.cacheP {
		a.cache = coefficientsFor(a.params, dt)
		a.cacheDT = dt
		a.cacheP = a.params
	}
	return a.cache
}
