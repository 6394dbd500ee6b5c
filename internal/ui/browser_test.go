package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func enter(m BrowserModel) (BrowserModel, tea.Msg) {
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	var msg tea.Msg
	if cmd != nil {
		msg = cmd()
	}
	return next.(BrowserModel), msg
}

func TestNewBrowserListsImagesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.PNG", "a.jpg", "notes.txt", ".hidden.png")
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	m := NewBrowser(dir)
	if m.HasError() {
		t.Fatalf("unexpected error: %v", m.Error())
	}
	items := m.list.Items()
	if len(items) != 4 {
		t.Fatalf("expected sample, path and two images, got %d items", len(items))
	}
	if _, ok := items[0].(sampleItem); !ok {
		t.Fatalf("expected sample first, got %T", items[0])
	}
	if it, ok := items[2].(imageItem); !ok || it.name != "a" {
		t.Fatalf("expected a.jpg third, got %#v", items[2])
	}
}

func TestBrowserSelectsSample(t *testing.T) {
	m := NewBrowser(t.TempDir())
	_, msg := enter(m)
	sel, ok := msg.(BrowserSelectedMsg)
	if !ok || sel.Path != "" {
		t.Fatalf("expected sample selection, got %#v", msg)
	}
}

func TestBrowserSelectsImageInDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "drag.png")
	m := NewBrowser(dir)
	m.list.Select(2)

	_, msg := enter(m)
	sel, ok := msg.(BrowserSelectedMsg)
	if !ok || sel.Path != filepath.Join(dir, "drag.png") {
		t.Fatalf("expected drag.png selection, got %#v", msg)
	}
}

func TestBrowserPathEntry(t *testing.T) {
	m := NewBrowser(t.TempDir())
	m.list.Select(1)
	m, _ = enter(m)
	if !m.pathMode {
		t.Fatal("expected path mode")
	}

	m.input.SetValue("  art/card.gif ")
	_, msg := enter(m)
	sel, ok := msg.(BrowserSelectedMsg)
	if !ok || sel.Path != "art/card.gif" {
		t.Fatalf("expected typed path, got %#v", msg)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(BrowserModel).pathMode {
		t.Fatal("expected esc to leave path mode")
	}
}

func TestBrowserCancel(t *testing.T) {
	m := NewBrowser(t.TempDir())
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(BrowserCancelledMsg); !ok {
		t.Fatal("expected BrowserCancelledMsg")
	}
}

func TestBrowserMissingDir(t *testing.T) {
	m := NewBrowser(filepath.Join(t.TempDir(), "missing"))
	if !m.HasError() {
		t.Fatal("expected error for missing directory")
	}
}
