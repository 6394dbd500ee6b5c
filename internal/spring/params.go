package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// MinResponse is the smallest response accepted; anything below is clamped.
const MinResponse = 0.001

// Parameters describe a spring by how it feels rather than by stiffness.
// DampingRatio < 1 overshoots, 1 is critical, > 1 approaches without
// overshoot. Response is the period of the undamped oscillation in seconds.
type Parameters struct {
	DampingRatio float64
	Response     float64
}

// NewParameters returns sanitized spring parameters.
func NewParameters(dampingRatio, response float64) Parameters {
	return Parameters{DampingRatio: dampingRatio, Response: response}.sanitized()
}

func (p Parameters) sanitized() Parameters {
	if !isFinite(p.DampingRatio) || p.DampingRatio < 0 {
		p.DampingRatio = 0
	}
	if !isFinite(p.Response) || p.Response < MinResponse {
		p.Response = MinResponse
	}
	return p
}

// AngularFrequency returns ω₀ = 2π / response.
func (p Parameters) AngularFrequency() float64 {
	return 2 * math.Pi / p.sanitized().Response
}

// coefficients map (displacement, velocity) at t to (displacement, velocity)
// at t+dt for one spring and one time step.
type coefficients struct {
	posPos, posVel float64
	velPos, velVel float64
}

// coefficientsFor samples harmonica's closed-form update with unit inputs.
// The update is linear in displacement and velocity, so the two samples
// recover the full transition matrix and it can be applied to any Vector.
func coefficientsFor(p Parameters, dt float64) coefficients {
	p = p.sanitized()
	s := harmonica.NewSpring(dt, p.AngularFrequency(), p.DampingRatio)
	var c coefficients
	c.posPos, c.velPos = s.Update(1, 0, 0)
	c.posVel, c.velVel = s.Update(0, 1, 0)
	return c
}
