package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/blurdrag/internal/effect"
	"github.com/olivier-w/blurdrag/internal/spring"
)

// Logical points per terminal cell. A half-block pixel is one cell wide and
// half a cell tall, so both axes come out at pointsPerPixel.
const (
	cellWidthPoints  = 24.0
	cellHeightPoints = 48.0
	pointsPerPixel   = 24.0
)

// gestureTracker turns mouse events into drag samples. Translation is
// measured from the cell where the button went down.
type gestureTracker struct {
	active         bool
	startX, startY int
	lastX, lastY   int
}

func (g *gestureTracker) sample(msg tea.MouseMsg) (effect.Sample, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return effect.Sample{}, false
		}
		if g.active {
			// Some terminals repeat the press while held.
			return g.moved(msg.X, msg.Y)
		}
		g.active = true
		g.startX, g.startY = msg.X, msg.Y
		g.lastX, g.lastY = msg.X, msg.Y
		return effect.Sample{Phase: effect.Began}, true

	case tea.MouseActionMotion:
		if !g.active {
			return effect.Sample{}, false
		}
		return g.moved(msg.X, msg.Y)

	case tea.MouseActionRelease:
		if !g.active {
			return effect.Sample{}, false
		}
		g.active = false
		return effect.Sample{Phase: effect.Ended, Translation: g.translation(msg.X, msg.Y)}, true
	}
	return effect.Sample{}, false
}

func (g *gestureTracker) moved(x, y int) (effect.Sample, bool) {
	if x == g.lastX && y == g.lastY {
		return effect.Sample{}, false
	}
	g.lastX, g.lastY = x, y
	return effect.Sample{Phase: effect.Changed, Translation: g.translation(x, y)}, true
}

func (g *gestureTracker) translation(x, y int) spring.Point {
	return spring.Pt(
		float64(x-g.startX)*cellWidthPoints,
		float64(y-g.startY)*cellHeightPoints,
	)
}

// cancel ends any drag in progress and returns the closing sample.
func (g *gestureTracker) cancel() (effect.Sample, bool) {
	if !g.active {
		return effect.Sample{}, false
	}
	g.active = false
	return effect.Sample{Phase: effect.Ended, Translation: g.translation(g.lastX, g.lastY)}, true
}
