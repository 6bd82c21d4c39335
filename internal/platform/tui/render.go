package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tumble/internal/core"
)

// colorCodes maps semantic colors to ANSI-256 codes.
var colorCodes = map[core.Color]string{
	core.ColorFloor:        "250",
	core.ColorFragile:      "214",
	core.ColorBridgeClosed: "238",
	core.ColorBridgeOpen:   "51",
	core.ColorSwitch:       "213",
	core.ColorGoal:         "46",
	core.ColorBlock:        "196",
	core.ColorBlockMoving:  "203",
	core.ColorHUD:          "229",
	core.ColorDim:          "241",
	core.ColorWarn:         "196",
	core.ColorWin:          "46",
}

// Palette holds the styles for one output. Each SSH session gets its own
// so color support follows the client's terminal.
type Palette struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewPalette builds styles bound to r.
func NewPalette(r *lipgloss.Renderer) Palette {
	p := Palette{
		styles: make(map[core.Color]lipgloss.Style, len(colorCodes)),
		plain:  r.NewStyle(),
	}
	for c, code := range colorCodes {
		s := r.NewStyle().Foreground(lipgloss.Color(code))
		if c == core.ColorBlock || c == core.ColorWarn || c == core.ColorWin {
			s = s.Bold(true)
		}
		p.styles[c] = s
	}
	return p
}

// DefaultPalette uses the process-wide renderer.
func DefaultPalette() Palette {
	return NewPalette(lipgloss.DefaultRenderer())
}

// Style returns the style for c, falling back to unstyled text.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// Render converts the screen buffer to a styled string. Adjacent cells of
// the same color share one escape sequence.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runColor := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != runColor {
				sb.WriteString(p.Style(runColor).Render(run.String()))
				run.Reset()
			}
			runColor = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(p.Style(runColor).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}

// RenderScreen renders with the default palette.
func RenderScreen(s *core.Screen) string {
	return DefaultPalette().Render(s)
}
