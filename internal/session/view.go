package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lifepad/lifepad/internal/config"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("236")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Background(lipgloss.Color("236")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3)
)

const helpText = `lifepad

w a s d / arrows   move cursor
space              toggle cell
e                  advance one generation
f                  free-run playback (f again stops)
- =                survival threshold down / up
[ ]                birth count down / up
, .                framerate down / up
g                  edit glyphs (foreground, then background)
x x                clear the grid
q q                quit
h or ?             close this help`

func (m Model) View() string {
	if m.mode == modeHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			helpStyle.Render(helpText))
	}
	return m.viewGrid() + "\n" + m.statusRow()
}

// viewGrid returns the cached frame with the cursor cell highlighted.
// During playback the cursor is hidden.
func (m Model) viewGrid() string {
	if m.mode == modePlay {
		return m.frame
	}
	lines := strings.Split(m.frame, "\n")
	if m.cursorY < len(lines) {
		line := []rune(lines[m.cursorY])
		if m.cursorX < len(line) {
			lines[m.cursorY] = string(line[:m.cursorX]) +
				cursorStyle.Render(string(line[m.cursorX])) +
				string(line[m.cursorX+1:])
		}
	}
	return strings.Join(lines, "\n")
}

// statusRow renders the reserved bottom line.
func (m Model) statusRow() string {
	switch {
	case m.mode == modeCaptureFG:
		return promptStyle.Render(pad(" new live glyph? (letter, digit, space or punctuation)", m.width))
	case m.mode == modeCaptureBG:
		return promptStyle.Render(pad(" new dead glyph? (must differ from the live glyph)", m.width))
	case m.pending == confirmClear:
		return warnStyle.Render(pad(" clear the grid: press x again to confirm", m.width))
	case m.pending == confirmQuit:
		return warnStyle.Render(pad(" quit: press q again to confirm", m.width))
	}

	tag := "VIEW"
	if m.mode == modePlay {
		tag = "PLAY"
	}
	row := fmt.Sprintf(" %s  live:%d birth:%d  fps:%s  gen:%d  pop:%d  glyphs:%c%c  h:help",
		tag, m.live, m.birth, config.FPSLabel(m.fpsIdx),
		m.generation, m.grid.Population(), m.fg, m.bg)
	return statusStyle.Render(pad(row, m.width))
}

// pad truncates or space-pads s to exactly width terminal cells.
func pad(s string, width int) string {
	rs := []rune(s)
	if len(rs) > width {
		return string(rs[:width])
	}
	return s + strings.Repeat(" ", width-len(rs))
}
