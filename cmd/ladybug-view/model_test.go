package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chriswmackey/ladybug-display/display"
	"github.com/chriswmackey/ladybug-display/geometry"
	"github.com/chriswmackey/ladybug-display/visset"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	width, err := display.NewLineWidth(1)
	if err != nil {
		t.Fatal(err)
	}
	seg, err := display.NewLineSegment3D(
		geometry.LineSegment3DFromEndPoints(
			geometry.Point3D{}, geometry.Point3D{X: 10, Y: 5}),
		nil, width, display.Continuous)
	if err != nil {
		t.Fatal(err)
	}
	lines, err := visset.NewContextGeometry("lines", []display.Object{seg})
	if err != nil {
		t.Fatal(err)
	}
	red := display.NewColor(255, 0, 0)
	marks, err := visset.NewContextGeometry("marks", []display.Object{
		display.NewPoint2D(geometry.Point2D{X: 3, Y: 3}, &red),
	})
	if err != nil {
		t.Fatal(err)
	}
	marks.SetHidden(true)
	vs, err := visset.New("scene", []*visset.ContextGeometry{lines, marks})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(vs)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	m, err := load(writeFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.layers) != 2 {
		t.Fatalf("layers = %d, want 2", len(m.layers))
	}
	if !m.layers[0].visible || m.layers[0].name != "lines" {
		t.Fatalf("first layer = %+v", m.layers[0])
	}
	if m.layers[1].visible {
		t.Fatal("hidden context must start toggled off")
	}
	if len(m.layers[0].strips) == 0 {
		t.Fatal("no strips for the line layer")
	}
	if m.bounds.IsEmpty() {
		t.Fatal("bounds must cover the geometry")
	}
	if m.zoom != 1 {
		t.Fatalf("zoom = %v, want 1", m.zoom)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file must error")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"type":"Nope"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := load(path); err == nil || !strings.Contains(err.Error(), "bad.json") {
		t.Fatalf("err = %v, want parse error naming the file", err)
	}
}

func TestUpdateKeys(t *testing.T) {
	m, err := load(writeFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(model)
	if m.width != 80 || m.height != 24 {
		t.Fatalf("size = %dx%d, want 80x24", m.width, m.height)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	m = next.(model)
	if m.zoom <= 1 {
		t.Fatalf("zoom = %v after zooming in", m.zoom)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	if m.offsetY != -1 {
		t.Fatalf("offsetY = %d after panning up", m.offsetY)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	m = next.(model)
	if !m.layers[1].visible {
		t.Fatal("pressing 2 must show the hidden layer")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(model)
	if m.zoom != 1 || m.offsetX != 0 || m.offsetY != 0 {
		t.Fatalf("reset left zoom %v offset %d,%d", m.zoom, m.offsetX, m.offsetY)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q must produce a quit message")
	}
}

func TestViewDrawsFrame(t *testing.T) {
	m, err := load(writeFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	if m.View() != "" {
		t.Fatal("view must stay empty before the first size message")
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(model)
	out := m.View()
	if !strings.Contains(out, "ladybug-view") {
		t.Fatalf("view misses the title:\n%s", out)
	}
	if !strings.Contains(out, "lines") {
		t.Fatalf("view misses the layer summary:\n%s", out)
	}
	var drawn bool
	for _, r := range out {
		if r >= 0x2801 && r <= 0x28ff {
			drawn = true
			break
		}
	}
	if !drawn {
		t.Fatalf("no braille cells drawn:\n%s", out)
	}
}
