package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/blurdrag/internal/media"
)

type imageItem struct {
	name string
	ext  string
}

func (i imageItem) Title() string       { return i.name }
func (i imageItem) Description() string { return i.ext }
func (i imageItem) FilterValue() string { return i.name }

type sampleItem struct{}

func (sampleItem) Title() string       { return "Built-in sample" }
func (sampleItem) Description() string { return "striped card" }
func (sampleItem) FilterValue() string { return "sample" }

type pathItem struct{}

func (pathItem) Title() string       { return "Open path..." }
func (pathItem) Description() string { return "enter an image path" }
func (pathItem) FilterValue() string { return "path" }

// BrowserModel picks the image to drag. It reports its result with
// BrowserSelectedMsg or BrowserCancelledMsg.
type BrowserModel struct {
	list     list.Model
	input    textinput.Model
	dir      string
	pathMode bool
	err      error
}

// NewBrowser creates a browser listing the images in dir.
func NewBrowser(dir string) BrowserModel {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BrowserModel{err: fmt.Errorf("cannot read directory: %w", err)}
	}

	items := []list.Item{sampleItem{}, pathItem{}}
	var images []imageItem
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !media.IsSupportedExt(ext) {
			continue
		}
		images = append(images, imageItem{
			name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			ext:  filepath.Ext(e.Name()),
		})
	}
	sort.Slice(images, func(i, j int) bool {
		return strings.ToLower(images[i].name) < strings.ToLower(images[j].name)
	})
	for _, img := range images {
		items = append(items, img)
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#FF5F1F", Dark: "#FF8C00"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#FF5F1F", Dark: "#FF8C00"})

	l := list.New(items, delegate, 80, 20)
	l.Title = "blurdrag"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle

	ti := textinput.New()
	ti.Placeholder = "path/to/image.png"
	ti.CharLimit = 4096
	ti.Width = 60

	return BrowserModel{list: l, input: ti, dir: dir}
}

// HasError returns true if the browser could not be initialized.
func (m BrowserModel) HasError() bool {
	return m.err != nil
}

// Error returns the initialization error, if any.
func (m BrowserModel) Error() error {
	return m.err
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.SetWindowTitle("blurdrag")
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		if k, ok := msg.(tea.KeyMsg); ok && isQuit(k) {
			return m, cancelled
		}
		return m, nil
	}
	if m.pathMode {
		return m.updatePathInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			switch item := m.list.SelectedItem().(type) {
			case sampleItem:
				return m, selected("")
			case pathItem:
				m.pathMode = true
				m.input.Focus()
				return m, tea.Batch(textinput.Blink, tea.SetWindowTitle("blurdrag — open path"))
			case imageItem:
				return m, selected(filepath.Join(m.dir, item.name+item.ext))
			}
		case "q", "esc", "ctrl+c":
			return m, cancelled
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) updatePathInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path != "" {
				return m, selected(path)
			}
		case "esc":
			m.pathMode = false
			m.input.Reset()
			m.input.Blur()
			return m, tea.SetWindowTitle("blurdrag")
		case "ctrl+c":
			return m, cancelled
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	if m.pathMode {
		s := "\n"
		s += "  " + headerStyle.Render("blurdrag") + "\n"
		s += "\n"
		s += "  " + statusStyle.Render("Image path:") + "\n"
		s += "  " + m.input.View() + "\n"
		s += "\n"
		s += "  " + helpStyle.Render("enter open  esc back  ctrl+c quit") + "\n"
		return s
	}
	return m.list.View()
}

func selected(path string) tea.Cmd {
	return func() tea.Msg { return BrowserSelectedMsg{Path: path} }
}

func cancelled() tea.Msg { return BrowserCancelledMsg{} }
