package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chriswmackey/ladybug-display/svg"
	"github.com/chriswmackey/ladybug-display/visset"
)

const (
	maxZoom  = 64
	minZoom  = 0.05
	zoomStep = 1.2
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	canvasStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141"))
)

// layer holds one context geometry lowered to line strips, ready for
// the braille canvas.
type layer struct {
	name    string
	visible bool
	strips  [][]svg.Point
}

type model struct {
	path   string
	layers []layer
	bounds svg.Bounds

	width, height    int
	zoom             float64
	offsetX, offsetY int
	status           string

	keys keyMap
	help help.Model
}

type keyMap struct {
	Up, Down, Left, Right key.Binding
	ZoomIn, ZoomOut       key.Binding
	Reset                 key.Binding
	Layer                 key.Binding
	Help                  key.Binding
	Quit                  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓/←/→", "pan")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Left:    key.NewBinding(key.WithKeys("left")),
		Right:   key.NewBinding(key.WithKeys("right")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "zoom")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Reset:   key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", "reset view")),
		Layer:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "toggle layer")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.ZoomIn, k.Reset},
		{k.Layer, k.Help, k.Quit},
	}
}

// load reads a visualization set and lowers every context to line
// strips. Hidden contexts load too; they just start toggled off.
func load(path string) (model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model{}, err
	}
	var vs visset.VisualizationSet
	if err := json.Unmarshal(data, &vs); err != nil {
		return model{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	m := model{
		path: path,
		zoom: 1,
		keys: newKeyMap(),
		help: help.New(),
	}
	var els []svg.Element
	for _, ctx := range vs.Contexts() {
		el := ctx.ToSVG()
		els = append(els, el)
		var ls [][]svg.Point
		for _, strip := range strips(el) {
			if len(strip) >= 2 {
				ls = append(ls, strip)
			}
		}
		m.layers = append(m.layers, layer{
			name:    ctx.Identifier(),
			visible: !ctx.Hidden(),
			strips:  ls,
		})
	}
	m.bounds = svg.BoundsOf(els...)
	m.status = fmt.Sprintf("%s: %d layers", vs.DisplayName(), len(m.layers))
	return m, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.offsetY--
		case key.Matches(msg, m.keys.Down):
			m.offsetY++
		case key.Matches(msg, m.keys.Left):
			m.offsetX -= 2
		case key.Matches(msg, m.keys.Right):
			m.offsetX += 2
		case key.Matches(msg, m.keys.ZoomIn):
			if m.zoom < maxZoom {
				m.zoom *= zoomStep
			}
			m.status = fmt.Sprintf("zoom %.2fx", m.zoom)
		case key.Matches(msg, m.keys.ZoomOut):
			if m.zoom > minZoom {
				m.zoom /= zoomStep
			}
			m.status = fmt.Sprintf("zoom %.2fx", m.zoom)
		case key.Matches(msg, m.keys.Reset):
			m.zoom, m.offsetX, m.offsetY = 1, 0, 0
			m.status = "view reset"
		case key.Matches(msg, m.keys.Layer):
			i := int(msg.String()[0] - '1')
			if i >= 0 && i < len(m.layers) {
				m.layers[i].visible = !m.layers[i].visible
				state := "hidden"
				if m.layers[i].visible {
					state = "shown"
				}
				m.status = fmt.Sprintf("%s %s", m.layers[i].name, state)
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := titleStyle.Render(" ladybug-view ") + dimStyle.Render(filepath.Base(m.path))
	helpView := m.help.View(m.keys)

	canvasW := m.width - 2
	if canvasW < 10 {
		canvasW = 10
	}
	canvasH := m.height - 3 - lipgloss.Height(helpView)
	if canvasH < 4 {
		canvasH = 4
	}
	frame := canvasStyle.Render(m.renderCanvas(canvasW, canvasH))
	status := dimStyle.Render(" " + m.status + "   " + m.layerSummary())
	return lipgloss.JoinVertical(lipgloss.Left, header, frame, status, helpView)
}

func (m model) layerSummary() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		mark := "·"
		if l.visible {
			mark = "●"
		}
		parts[i] = fmt.Sprintf("%d%s%s", i+1, mark, l.name)
	}
	return strings.Join(parts, "  ")
}
