package util

import (
	"math"
	"testing"
)

func TestFormatDegrees(t *testing.T) {
	cases := map[float64]string{
		0:               "0°",
		math.Pi / 2:     "90°",
		-math.Pi / 2:    "-90°",
		math.Pi:         "180°",
		-math.Pi:        "180°",
		3 * math.Pi / 2: "-90°",
		-0.001:          "0°",
	}
	for in, want := range cases {
		if got := FormatDegrees(in); got != want {
			t.Fatalf("FormatDegrees(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatAmountHidesNegativeZero(t *testing.T) {
	if got := FormatAmount(-0.001); got != "0.00" {
		t.Fatalf("expected 0.00, got %q", got)
	}
	if got := FormatAmount(0.0504); got != "0.05" {
		t.Fatalf("expected 0.05, got %q", got)
	}
}

func TestFormatPoint(t *testing.T) {
	if got := FormatPoint(1.26, -12.34); got != "(1.3, -12.3)" {
		t.Fatalf("unexpected point format %q", got)
	}
}
