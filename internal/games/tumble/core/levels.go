package core

import (
	"errors"
	"fmt"
)

// LevelCount is the number of built-in levels.
const LevelCount = 3

// ErrUnknownLevel is returned for level numbers outside 1..LevelCount.
var ErrUnknownLevel = errors.New("unknown level")

// LevelDataError reports an undefined tile code in a level table.
type LevelDataError struct {
	Level int
	Cell  Cell
	Code  int
}

func (e *LevelDataError) Error() string {
	return fmt.Sprintf("level %d: undefined tile code %d at %s", e.Level, e.Code, e.Cell)
}

// Built-in boards, indexed [col][row]. Column grows along +X, row along -Z.
var layouts = [LevelCount]Layout{
	{
		{1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 0, 0, 6, 0},
		{1, 1, 0, 0, 1, 1, 0, 0, 1, 0},
		{1, 1, 0, 0, 1, 1, 1, 1, 1, 0},
		{1, 1, 0, 0, 0, 1, 0, 1, 1, 1},
		{1, 1, 0, 0, 0, 1, 0, 1, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 1, 1, 1},
		{1, 1, 0, 0, 0, 0, 0, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	},
	{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 6, 0},
		{0, 1, 1, 1, 1, 1, 1, 0, 1, 0},
		{1, 1, 1, 0, 0, 3, 0, 1, 1, 1},
		{1, 1, 1, 0, 0, 3, 0, 1, 1, 1},
		{1, 1, 1, 0, 0, 1, 0, 1, 1, 1},
		{0, 1, 1, 0, 0, 1, 0, 1, 1, 1},
		{0, 1, 1, 0, 0, 4, 0, 1, 1, 1},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 0},
	},
	{
		{0, 0, 0, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 1, 1, 1, 1, 0, 0, 6, 0},
		{1, 1, 1, 1, 1, 1, 0, 0, 1, 0},
		{2, 2, 1, 0, 0, 3, 0, 1, 1, 0},
		{1, 1, 1, 0, 0, 3, 0, 1, 1, 0},
		{0, 1, 1, 0, 0, 1, 0, 1, 1, 0},
		{1, 1, 1, 0, 0, 4, 0, 1, 1, 0},
		{2, 2, 1, 1, 1, 1, 1, 1, 1, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 0, 0, 1, 1, 0, 0, 0, 0, 0},
	},
}

// levelNames are shown by the level selector and the levels command.
var levelNames = [LevelCount]string{
	"First Steps",
	"Bridge Crossing",
	"Thin Ice",
}

// LevelLayout returns a copy of the built-in table for level (1-based).
func LevelLayout(level int) (Layout, error) {
	if level < 1 || level > LevelCount {
		return Layout{}, fmt.Errorf("%w: %d", ErrUnknownLevel, level)
	}
	return layouts[level-1], nil
}

// LevelName returns the display name of a level, or "" if unknown.
func LevelName(level int) string {
	if level < 1 || level > LevelCount {
		return ""
	}
	return levelNames[level-1]
}

// ValidateLayout fails with a *LevelDataError on the first undefined code.
func ValidateLayout(level int, layout Layout) error {
	for col := range GridSize {
		for row := range GridSize {
			if code := layout[col][row]; !Tile(code).Valid() {
				return &LevelDataError{Level: level, Cell: Cell{Col: col, Row: row}, Code: code}
			}
		}
	}
	return nil
}
