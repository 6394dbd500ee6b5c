package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/olivier-w/blurdrag/internal/util"
)

func newSlider() progress.Model {
	return progress.New(
		progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
		progress.WithoutPercentage(),
		progress.WithWidth(24),
	)
}

// renderSlider draws a labelled horizontal slider for value in [lo, hi].
func renderSlider(bar progress.Model, label string, value, lo, hi float64) string {
	ratio := 0.0
	if hi > lo {
		ratio = (value - lo) / (hi - lo)
	}
	ratio = math.Max(0, math.Min(1, ratio))
	return fmt.Sprintf("%s %s %s",
		labelStyle.Render(label),
		bar.ViewAs(ratio),
		valueStyle.Render(util.FormatAmount(value)),
	)
}

// Screen y grows downward, so positive angles turn clockwise.
var dialArrows = [8]string{"→", "↘", "↓", "↙", "←", "↖", "↑", "↗"}

// renderDial draws the blur angle as an arrow plus degrees.
func renderDial(angle float64, active bool) string {
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	arrow := dialArrows[sector]
	if active {
		arrow = dialActiveStyle.Render(arrow)
	} else {
		arrow = valueStyle.Render(arrow)
	}
	return fmt.Sprintf("%s %s %s", labelStyle.Render("Angle"), arrow, valueStyle.Render(util.FormatDegrees(angle)))
}

// renderToggle draws the effect switch indicator.
func renderToggle(enabled bool) string {
	if enabled {
		return onStyle.Render("●") + " " + statusStyle.Render("effect")
	}
	return offStyle.Render("●") + " " + statusStyle.Render("plain")
}
