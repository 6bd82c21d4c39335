package core

// footprintOffset is the distance from a lying block's center to each half.
const footprintOffset = 0.25

// Outcome is the result of a landing, and the session's overall state.
type Outcome int

const (
	Playing Outcome = iota
	Lost
	LevelCleared
	Won
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case LevelCleared:
		return "level_cleared"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further commands can be accepted.
func (o Outcome) Terminal() bool {
	return o == Lost || o == Won
}

// Footprint returns the grid cells under a block with the given shape.
// A standing block covers one cell; a lying block covers the two cells
// either side of its center along the long axis.
func Footprint(e Extent, c Vec3) []Cell {
	switch e.Orientation() {
	case LyingX:
		return []Cell{CellAt(c.X+footprintOffset, c.Z), CellAt(c.X-footprintOffset, c.Z)}
	case LyingZ:
		return []Cell{CellAt(c.X, c.Z+footprintOffset), CellAt(c.X, c.Z-footprintOffset)}
	default:
		return []Cell{CellAt(c.X, c.Z)}
	}
}

// Landing describes what the block landed on.
type Landing struct {
	Cells   []Cell
	Tiles   []Tile
	Outcome Outcome // Playing, Lost or LevelCleared
	Toggle  bool    // switch flag must flip
}

// Evaluate classifies a landing against the grid. Rules, highest first:
// any void cell loses; a standing block on a fragile tile loses; a lying
// block with exactly one fragile half loses; a standing block on the goal
// clears the level; any switch cell toggles the switch once.
func Evaluate(g *TileGrid, e Extent, c Vec3) Landing {
	cells := Footprint(e, c)
	tiles := make([]Tile, len(cells))
	fragile := 0
	for i, cell := range cells {
		tiles[i] = g.TileAt(cell)
		if tiles[i] == TileFragile {
			fragile++
		}
	}

	l := Landing{Cells: cells, Tiles: tiles, Outcome: Playing}
	for _, t := range tiles {
		if t == TileVoid {
			l.Outcome = Lost
			return l
		}
	}

	// One fragile cell breaks whether the block stands on it or lies half
	// on it; two fragile halves share the weight and hold.
	if fragile == 1 {
		l.Outcome = Lost
		return l
	}
	if len(tiles) == 1 && tiles[0] == TileGoal {
		l.Outcome = LevelCleared
		return l
	}

	for _, t := range tiles {
		if t == TileSwitch {
			l.Toggle = true
			break
		}
	}
	return l
}
