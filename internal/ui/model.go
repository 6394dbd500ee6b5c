package ui

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/blurdrag/internal/canvas"
	"github.com/olivier-w/blurdrag/internal/effect"
	"github.com/olivier-w/blurdrag/internal/spring"
	"github.com/olivier-w/blurdrag/internal/util"
)

// Options configure a demo session.
type Options struct {
	Variant   effect.Variant
	Debug     bool
	Tuning    effect.Tuning
	FPS       int
	ColorMode canvas.ColorMode
	Title     string
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Variant:   effect.Motion,
		Tuning:    effect.DefaultTuning(),
		FPS:       60,
		ColorMode: canvas.DetectColorMode(),
		Title:     "sample",
	}
}

const angleStep = math.Pi / 12

// Model is the Bubbletea model for the blurdrag demo.
type Model struct {
	opts    Options
	ctrl    *effect.Controller
	view    *stageView
	gesture gestureTracker
	slider  progress.Model

	width    int
	height   int
	ticking  bool
	quitting bool
}

// New creates a demo model drawing img.
func New(img image.Image, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	m := Model{
		opts:   opts,
		view:   newStageView(img, opts.ColorMode),
		slider: newSlider(),
	}
	m.ctrl = m.newController()
	return m
}

func (m Model) newController() *effect.Controller {
	p := effect.ProfileFor(m.opts.Variant, m.opts.Debug, m.opts.Tuning)
	c := effect.NewController(spring.NewDriver(m.opts.FPS), p, m.view)
	c.Flush()
	return c
}

// Controller returns the effect controller driving the view.
func (m Model) Controller() *effect.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.windowTitle())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		s, ok := m.gesture.sample(msg)
		if !ok {
			return m, nil
		}
		m.ctrl.Handle(s)
		cmd := m.ensureTicking()
		return m, cmd

	case frameMsg:
		m.ctrl.Tick(time.Time(msg))
		if m.ctrl.Animating() {
			return m, frameCmd(m.opts.FPS)
		}
		m.ticking = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.slider.Width = max(10, min(32, msg.Width/4))
		m.view.resize(m.canvasSize())
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit(msg) {
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	switch msg.String() {
	case "t":
		m.ctrl.ToggleEnabled()
		m.ctrl.Flush()
	case "v":
		if m.opts.Variant == effect.Motion {
			m.opts.Variant = effect.Zoom
		} else {
			m.opts.Variant = effect.Motion
		}
		return m.rebuild()
	case "d":
		m.opts.Debug = !m.opts.Debug
		return m.rebuild()
	case "[", "]", "{", "}":
		m.nudgeBlur(msg.String())
	case ",", "<":
		m.ctrl.SetAngle(m.ctrl.Frame().Angle - angleStep)
		m.ctrl.Flush()
	case ".", ">":
		m.ctrl.SetAngle(m.ctrl.Frame().Angle + angleStep)
		m.ctrl.Flush()
	case "0":
		p := m.ctrl.Profile()
		m.ctrl.SetBlur(p.RestingBlur)
		m.ctrl.SetAngle(0)
		m.ctrl.Flush()
	}
	return m, nil
}

func (m Model) nudgeBlur(key string) {
	p := m.ctrl.Profile()
	step := p.BlurStep
	if step <= 0 {
		step = 0.01
	}
	switch key {
	case "[":
		step = -step
	case "{":
		step = -10 * step
	case "}":
		step = 10 * step
	}
	m.ctrl.SetBlur(m.ctrl.Frame().Blur + step)
	m.ctrl.Flush()
}

// rebuild swaps in a controller for the current variant and debug setting.
// Any drag in progress is dropped.
func (m Model) rebuild() (tea.Model, tea.Cmd) {
	m.gesture = gestureTracker{}
	enabled := m.ctrl.Enabled()
	m.ctrl = m.newController()
	m.ctrl.SetEnabled(enabled)
	m.ctrl.Flush()
	m.view.resize(m.canvasSize())
	return m, tea.SetWindowTitle(m.windowTitle())
}

// ensureTicking starts the frame loop if animators are running and no
// frame is already scheduled.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.ctrl.Animating() {
		return nil
	}
	m.ticking = true
	return frameCmd(m.opts.FPS)
}

func (m Model) chromeRows() int {
	rows := 3 // header, status, help
	if m.opts.Debug {
		rows++
	}
	return rows
}

func (m Model) canvasSize() (int, int) {
	return max(1, m.width), max(1, m.height-m.chromeRows())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return "\n  " + headerStyle.Render("blurdrag") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.view.view())
	b.WriteByte('\n')
	b.WriteString(m.renderStatus())
	if m.opts.Debug {
		b.WriteByte('\n')
		b.WriteString(m.renderSliders())
	}
	b.WriteByte('\n')
	b.WriteString(" " + helpStyle.Render(helpText(m.opts.Debug)))
	return b.String()
}

func (m Model) renderHeader() string {
	left := " " + headerStyle.Render("blurdrag") + "  " + titleStyle.Render(m.opts.Title) +
		"  " + statusStyle.Render(m.variantLabel())
	right := renderToggle(m.ctrl.Enabled()) + " "
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderStatus() string {
	f := m.ctrl.Frame()
	parts := []string{
		m.ctrl.State().String(),
		"pos " + util.FormatPoint(f.Position.X, f.Position.Y),
		"scale " + util.FormatAmount(f.Scale.X) + "×" + util.FormatAmount(f.Scale.Y),
		"blur " + util.FormatAmount(f.Blur),
	}
	if f.Variant == effect.Motion {
		parts = append(parts, "angle "+util.FormatDegrees(f.Angle))
	}
	return " " + statusStyle.Render(strings.Join(parts, "  "))
}

func (m Model) renderSliders() string {
	p := m.ctrl.Profile()
	f := m.ctrl.Frame()
	label := "Motion Blur"
	if p.Variant == effect.Zoom {
		label = "Zoom Blur"
	}
	s := " " + renderSlider(m.slider, label, f.Blur, p.BlurRange[0], p.BlurRange[1])
	if p.Variant == effect.Motion {
		s += "   " + renderDial(f.Angle, m.gesture.active)
	}
	return s
}

func (m Model) variantLabel() string {
	label := fmt.Sprintf("%s blur", m.opts.Variant)
	if m.opts.Debug {
		label += " (debug)"
	}
	return label
}

func (m Model) windowTitle() string {
	return m.opts.Title + " — blurdrag"
}
