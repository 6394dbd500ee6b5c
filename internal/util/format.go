package util

import (
	"fmt"
	"math"
)

// FormatDegrees formats an angle in radians as whole degrees in (-180, 180].
func FormatDegrees(rad float64) string {
	d := int(math.Round(math.Remainder(rad*180/math.Pi, 360)))
	if d == -180 {
		d = 180
	}
	return fmt.Sprintf("%d°", d)
}

// FormatPoint formats a 2D value as "(x, y)" with one decimal.
func FormatPoint(x, y float64) string {
	return fmt.Sprintf("(%.1f, %.1f)", x, y)
}

// FormatAmount formats a blur or scale value with two decimals.
func FormatAmount(v float64) string {
	if math.Abs(v) < 0.005 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}
