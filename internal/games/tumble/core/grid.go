package core

import (
	"errors"
	"fmt"
	"math"
)

// GridSize is the width and height of every board.
const GridSize = 10

// Board geometry in world units.
const (
	CellSize = 0.5
	// originX is the world X of column 0; originZ is the world Z of row 0.
	originX = -2.5
	originZ = 2.5
)

// ErrOutOfRange is returned when a grid coordinate falls outside the board.
var ErrOutOfRange = errors.New("grid coordinate out of range")

// Layout is a raw level table indexed [col][row].
type Layout [GridSize][GridSize]int

// Cell addresses a grid cell by column and row.
type Cell struct {
	Col int
	Row int
}

// String returns "(col,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// TileGrid is the runtime copy of a level board.
type TileGrid struct {
	level int
	tiles [GridSize][GridSize]Tile
}

// NewGrid builds a grid from a raw layout, rejecting undefined tile codes.
// The level number is informational and may be 0 for ad-hoc boards.
func NewGrid(level int, layout Layout) (*TileGrid, error) {
	if err := ValidateLayout(level, layout); err != nil {
		return nil, err
	}
	g := &TileGrid{level: level}
	for col := range GridSize {
		for row := range GridSize {
			g.tiles[col][row] = Tile(layout[col][row])
		}
	}
	return g, nil
}

// Load returns a fresh runtime grid for the given level (1-based).
func Load(level int) (*TileGrid, error) {
	layout, err := LevelLayout(level)
	if err != nil {
		return nil, err
	}
	return NewGrid(level, layout)
}

// Level returns the level number the grid was loaded for.
func (g *TileGrid) Level() int {
	return g.level
}

// InBounds reports whether (col,row) lies on the board.
func InBounds(col, row int) bool {
	return col >= 0 && col < GridSize && row >= 0 && row < GridSize
}

// At returns the tile at (col,row).
func (g *TileGrid) At(col, row int) (Tile, error) {
	if !InBounds(col, row) {
		return TileVoid, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, col, row)
	}
	return g.tiles[col][row], nil
}

// TileAt returns the tile under c, treating off-board cells as void.
func (g *TileGrid) TileAt(c Cell) Tile {
	t, err := g.At(c.Col, c.Row)
	if err != nil {
		return TileVoid
	}
	return t
}

// TileAtWorld returns the tile under the world position (x, z).
func (g *TileGrid) TileAtWorld(x, z float64) Tile {
	return g.TileAt(CellAt(x, z))
}

// Goal returns the first goal cell on the board.
func (g *TileGrid) Goal() (Cell, bool) {
	for col := range GridSize {
		for row := range GridSize {
			if g.tiles[col][row] == TileGoal {
				return Cell{Col: col, Row: row}, true
			}
		}
	}
	return Cell{}, false
}

// Clone returns an independent copy of the grid.
func (g *TileGrid) Clone() *TileGrid {
	c := *g
	return &c
}

// CellAt maps a world position to the nearest grid cell. The result may be
// off the board; use InBounds or TileAt to classify it.
func CellAt(x, z float64) Cell {
	return Cell{
		Col: int(math.Round((x - originX) / CellSize)),
		Row: int(math.Round((-z + originZ) / CellSize)),
	}
}

// WorldX returns the world X coordinate of a column's center.
func WorldX(col int) float64 {
	return originX + float64(col)*CellSize
}

// WorldZ returns the world Z coordinate of a row's center.
func WorldZ(row int) float64 {
	return originZ - float64(row)*CellSize
}
