// Package session implements the interactive sandbox: a key-driven
// state machine owning the grid, cursor, rule thresholds, glyph pair and
// framerate selection, with free-run playback paced by timer messages.
package session

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lifepad/lifepad/internal/config"
	"github.com/lifepad/lifepad/internal/grid"
	"github.com/lifepad/lifepad/internal/life"
	"github.com/lifepad/lifepad/internal/metrics"
)

type mode int

const (
	modeView mode = iota
	modePlay
	modeHelp
	modeCaptureFG
	modeCaptureBG
)

type confirm int

const (
	confirmNone confirm = iota
	confirmClear
	confirmQuit
)

// frameMsg paces free-run playback. run identifies the playback stretch
// it belongs to so ticks from an exited stretch are dropped.
type frameMsg struct {
	run int
}

// The grid is sized from the first WindowSizeMsg; these only cover the
// instant before it arrives.
const (
	defaultCols = 80
	defaultRows = 24
)

// Model is the session state machine. It keeps value semantics the way
// bubbletea expects; the grid pointer is owned by exactly one live model.
type Model struct {
	grid       *grid.Grid
	cursorX    int
	cursorY    int
	live       int
	birth      int
	fpsIdx     int
	fg, bg     rune
	mode       mode
	pending    confirm
	generation int
	playRun    int
	frame      string // cached grid rendering
	width      int
	height     int
	sized      bool // true once the real terminal size has arrived
	rec        *metrics.Recorder
}

// New builds a session from startup configuration. rec may be disabled
// or nil; every recorder method tolerates both.
func New(cfg *config.Config, rec *metrics.Recorder) Model {
	fg, bg := cfg.Glyphs()
	m := Model{
		grid:   grid.New(defaultCols, defaultRows-1),
		live:   config.ClampThreshold(cfg.Live),
		birth:  config.ClampThreshold(cfg.Birth),
		fpsIdx: config.ClampFPSIndex(cfg.FPS),
		fg:     fg,
		bg:     bg,
		width:  defaultCols,
		height: defaultRows,
		rec:    rec,
	}
	m.cursorX = m.grid.Width() / 2
	m.cursorY = m.grid.Height() / 2
	m.frame = m.grid.Render(m.fg, m.bg)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Applied the same way from every mode; a resize while help is
		// shown regrows the grid before help is redisplayed.
		m.applyResize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		return m.playFrame(msg)
	}
	return m, nil
}

// applyResize regrows the grid to the new terminal bounds, reserving the
// bottom row for status. The first size message centers the cursor on
// the real grid; later resizes only re-clamp it. It also disarms any
// pending confirmation.
func (m *Model) applyResize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 2 {
		h = 2
	}
	m.width, m.height = w, h
	m.grid.Resize(w, h-1)
	if !m.sized {
		m.sized = true
		m.cursorX = m.grid.Width() / 2
		m.cursorY = m.grid.Height() / 2
	} else {
		m.cursorX = clamp(m.cursorX, 0, m.grid.Width()-1)
		m.cursorY = clamp(m.cursorY, 0, m.grid.Height()-1)
	}
	m.pending = confirmNone
	m.redraw()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.rec.StopPlayback()
		return m, tea.Quit
	}

	switch m.mode {
	case modePlay:
		return m.playKey(key)
	case modeHelp:
		if key == "h" || key == "?" || key == "esc" {
			m.mode = modeView
			m.redraw()
		}
		return m, nil
	case modeCaptureFG, modeCaptureBG:
		m.captureKey(msg)
		return m, nil
	}

	// An armed confirmation consumes exactly one following keystroke:
	// the identical key commits, anything else is swallowed.
	if m.pending != confirmNone {
		armed := m.pending
		m.pending = confirmNone
		switch {
		case armed == confirmClear && key == "x":
			m.grid.Clear()
			m.generation = 0
			m.redraw()
		case armed == confirmQuit && key == "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "w", "up":
		m.cursorY = clamp(m.cursorY-1, 0, m.grid.Height()-1)
	case "s", "down":
		m.cursorY = clamp(m.cursorY+1, 0, m.grid.Height()-1)
	case "a", "left":
		m.cursorX = clamp(m.cursorX-1, 0, m.grid.Width()-1)
	case "d", "right":
		m.cursorX = clamp(m.cursorX+1, 0, m.grid.Width()-1)
	case " ":
		m.grid.Toggle(m.cursorX, m.cursorY)
		m.redraw()
	case "-":
		m.live = config.ClampThreshold(m.live - 1)
	case "=":
		m.live = config.ClampThreshold(m.live + 1)
	case "[":
		m.birth = config.ClampThreshold(m.birth - 1)
	case "]":
		m.birth = config.ClampThreshold(m.birth + 1)
	case ",":
		m.fpsIdx = config.ClampFPSIndex(m.fpsIdx - 1)
	case ".":
		m.fpsIdx = config.ClampFPSIndex(m.fpsIdx + 1)
	case "e":
		m.step()
	case "f":
		m.mode = modePlay
		m.playRun++
		m.rec.StartPlayback()
		return m, frameCmd(m.playRun, 0)
	case "h", "?":
		m.mode = modeHelp
	case "g":
		m.mode = modeCaptureFG
	case "x":
		m.pending = confirmClear
	case "q":
		m.pending = confirmQuit
	}
	return m, nil
}

// playKey handles keys arriving between playback frames: the playback
// key exits, everything else means keep running.
func (m Model) playKey(key string) (tea.Model, tea.Cmd) {
	if key == "f" {
		m.mode = modeView
		m.playRun++ // invalidates the in-flight frame tick
		m.rec.StopPlayback()
	}
	return m, nil
}

// playFrame runs one free-run iteration: evolve, re-render, then arm the
// next tick for whatever remains of the frame budget. The tick wait
// doubles as the timeout-bounded poll for input, so a keystroke or
// resize arriving mid-wait is handled with no added latency.
func (m Model) playFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if m.mode != modePlay || msg.run != m.playRun {
		return m, nil
	}
	start := time.Now()
	m.step()
	wait := config.FrameDuration(m.fpsIdx) - time.Since(start)
	if wait < 0 {
		wait = 0
	}
	return m, frameCmd(m.playRun, wait)
}

func frameCmd(run int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return frameMsg{run: run} })
}

// step advances one generation and refreshes the cached frame, feeding
// the recorder during playback.
func (m *Model) step() {
	evStart := time.Now()
	m.grid = life.Step(m.grid, m.live, m.birth)
	evolve := time.Since(evStart)

	rdStart := time.Now()
	m.redraw()
	render := time.Since(rdStart)

	m.generation++
	if m.mode == modePlay {
		m.rec.RecordFrame(evolve, render)
	}
}

// captureKey runs the two-stage glyph capture. A rune failing the
// validity predicate, or equal to the other slot's glyph, silently keeps
// the prior value; either way the stage advances.
func (m *Model) captureKey(msg tea.KeyMsg) {
	if rs := []rune(msg.String()); len(rs) == 1 {
		r := rs[0]
		switch m.mode {
		case modeCaptureFG:
			if config.ValidGlyph(r) && r != m.bg {
				m.fg = r
			}
		case modeCaptureBG:
			if config.ValidGlyph(r) && r != m.fg {
				m.bg = r
			}
		}
	}
	if m.mode == modeCaptureFG {
		m.mode = modeCaptureBG
		return
	}
	m.mode = modeView
	m.redraw()
}

func (m *Model) redraw() {
	m.frame = m.grid.Render(m.fg, m.bg)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
