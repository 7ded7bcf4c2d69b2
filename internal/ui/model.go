// Package ui is the terminal loop driver: a Bubble Tea model that
// schedules one frame at a time, rebuilds the field on resize, and feeds
// mouse coordinates into the pointer state.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/glimmer/internal/config"
	"github.com/olivier-w/glimmer/internal/field"
	"github.com/olivier-w/glimmer/internal/gfx"
	"github.com/olivier-w/glimmer/internal/surface"
	"github.com/olivier-w/glimmer/internal/util"
)

// statusRows is the cell rows reserved under the raster for the status bar
// and help line.
const statusRows = 2

// Model is the Bubble Tea model for the terminal animation.
type Model struct {
	cfg   config.Config
	theme gfx.Theme
	seed  int64

	field  *field.Field
	raster *surface.Raster

	keys keyMap
	help help.Model

	width, height int // terminal cells
	paused        bool
	quitting      bool
	started       time.Time
	frames        int
}

// New builds the model around an uninitialized field; the first
// WindowSizeMsg performs the initial build.
func New(cfg config.Config, theme gfx.Theme, seed int64) Model {
	return Model{
		cfg:     cfg,
		theme:   theme,
		seed:    seed,
		field:   field.New(cfg, theme, seed),
		keys:    defaultKeyMap(),
		help:    help.New(),
		started: time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.cfg.FPS), tea.SetWindowTitle("glimmer"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Reseed):
			m.seed++
			m.field = field.New(m.cfg, m.theme, m.seed)
			m.rebuild()
		}
		return m, nil

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionMotion, tea.MouseActionPress:
			x, y := cellToSurface(msg.X, msg.Y)
			m.field.SetPointer(x, y)
		case tea.MouseActionRelease:
			// Terminals have no leave event; release is the
			// touch-end analog and clears the pointer.
			m.field.ClearPointer()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuild()
		return m, nil

	case frameMsg:
		if !m.paused && m.field.Ready() {
			m.field.Step(m.raster)
			m.frames++
		}
		return m, frameCmd(m.cfg.FPS)
	}

	return m, nil
}

// rebuild replaces the raster and the field's collections for the current
// terminal size. The raster keeps statusRows cell rows free at the bottom.
func (m *Model) rebuild() {
	if m.width == 0 || m.height == 0 {
		return
	}
	rows := m.height - statusRows
	if rows < 1 {
		rows = 1
	}
	if m.raster == nil {
		m.raster = surface.NewRaster(m.width, rows)
	} else {
		m.raster.Resize(m.width, rows)
	}
	w, h := m.raster.Size()
	m.field.Init(w, h)
}

// cellToSurface maps a terminal cell coordinate to the center of its
// braille dot block on the virtual surface.
func cellToSurface(cx, cy int) (x, y float64) {
	return float64(cx*2) + 1, float64(cy*4) + 2
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.raster == nil {
		return ""
	}
	return m.raster.View() + "\n" + m.statusLine() + "\n" + m.help.View(m.keys)
}

func (m Model) statusLine() string {
	state := "running"
	if m.paused {
		state = "paused"
	}
	left := statusStyle.Render(state + "  " + util.FormatDuration(time.Since(m.started)))
	right := statusStyle.Render(util.FormatCount(len(m.field.Particles()), "particle"))
	return " " + left + spacer(m.width-lineWidth(left)-lineWidth(right)-2) + right
}
