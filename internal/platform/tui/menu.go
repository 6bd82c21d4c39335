package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-tumble/internal/games/tumble"
	tumblecore "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
	"github.com/vovakirdan/tui-tumble/internal/storage"
)

// MenuChoice is what a menu entry does when selected.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one selectable line of the menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
	Level  int // start level for ChoicePlay; 0 uses the configured one
}

// MenuModel is the level selector shown before a run.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	stats    *storage.GameStats
	keys     MenuKeyMap
	help     help.Model
	selected *MenuItem
}

// NewMenuModel builds the menu. store may be nil, in which case no
// statistics are shown.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	items := []MenuItem{{Label: "Play campaign", Choice: ChoicePlay}}
	for level := 1; level <= tumblecore.LevelCount; level++ {
		items = append(items, MenuItem{
			Label:  fmt.Sprintf("Level %d: %s", level, tumblecore.LevelName(level)),
			Choice: ChoicePlay,
			Level:  level,
		})
	}
	items = append(items,
		MenuItem{Label: "Scores", Choice: ChoiceScores},
		MenuItem{Label: "Quit", Choice: ChoiceQuit},
	)

	m := MenuModel{
		items:  items,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	m.help.Width = width
	if store != nil {
		// Best effort: the menu works without statistics.
		if stats, err := store.Stats(tumble.ID); err == nil {
			m.stats = stats
		}
	}
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and records a selection.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit:
		m.selected = &MenuItem{Choice: ChoiceQuit}
	case MenuActionUp:
		m.cursor = (m.cursor - 1 + len(m.items)) % len(m.items)
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(m.items)
	case MenuActionSelect:
		item := m.items[m.cursor]
		m.selected = &item
	case MenuActionScoreboard:
		m.selected = &MenuItem{Choice: ChoiceScores}
	}
	return m, nil
}

// Selected returns the chosen item, or nil while the menu is open.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// View draws the title, the entries and the player's record.
func (m MenuModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("T U M B L E", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Roll the block into the hole", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label + "  "
		if i == m.cursor {
			pad := strings.Repeat(" ", max((m.width-runewidth.StringWidth(line))/2, 0))
			b.WriteString(pad + cursorStyle.Render(line))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m MenuModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "No runs yet"
	}
	best := "-"
	if m.stats.BestMoves > 0 {
		best = fmt.Sprintf("%d moves", m.stats.BestMoves)
	}
	return fmt.Sprintf("Runs: %d   Wins: %d   Best win: %s", m.stats.Runs, m.stats.Wins, best)
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
