package spring

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vector is a quantity an Animator can drive toward a target.
type Vector[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float64) T
	Norm() float64
}

// Scalar is a one-dimensional animatable value.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar    { return s + o }
func (s Scalar) Sub(o Scalar) Scalar    { return s - o }
func (s Scalar) Scale(f float64) Scalar { return Scalar(float64(s) * f) }
func (s Scalar) Norm() float64          { return math.Abs(float64(s)) }
func (s Scalar) Float() float64         { return float64(s) }

// Point is a two-dimensional animatable value in logical points.
type Point r2.Vec

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(o Point) Point     { return Point(r2.Add(r2.Vec(p), r2.Vec(o))) }
func (p Point) Sub(o Point) Point     { return Point(r2.Sub(r2.Vec(p), r2.Vec(o))) }
func (p Point) Scale(f float64) Point { return Point(r2.Scale(f, r2.Vec(p))) }
func (p Point) Norm() float64         { return r2.Norm(r2.Vec(p)) }

// Finite reports whether both components are real numbers.
func (p Point) Finite() bool { return isFinite(p.X) && isFinite(p.Y) }

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func finite[T Vector[T]](v T) bool {
	return isFinite(v.Norm())
}
