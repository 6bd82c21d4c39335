package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tumble/internal/core"
)

func asciiPalette() Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return NewPalette(r)
}

func TestPaletteRenderPlainProfile(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorHUD)
	s.DrawTextColored(2, 0, "cd", core.ColorBlock)
	s.DrawText(0, 1, "xy")

	got := asciiPalette().Render(s)
	assert.Equal(t, s.String(), got)
}

func TestPaletteStyleFallback(t *testing.T) {
	p := asciiPalette()
	unknown := core.Color(200)
	assert.Equal(t, "x", p.Style(unknown).Render("x"))
}

func TestPaletteCoversSemanticColors(t *testing.T) {
	p := DefaultPalette()
	for c := range colorCodes {
		_, ok := p.styles[c]
		assert.True(t, ok, "color %d has no style", c)
	}
}
