// Package core implements the tumbling-block rule engine: tiles and boards,
// block geometry, the tumble transform, landing rules and session progression.
// It has no terminal or rendering dependencies.
package core

import "fmt"

// Tile is the type code of a single board cell.
type Tile int

// Tile codes as they appear in level tables. Code 5 is unused.
const (
	TileVoid    Tile = 0
	TileFloor   Tile = 1
	TileFragile Tile = 2
	TileBridge  Tile = 3
	TileSwitch  Tile = 4
	TileGoal    Tile = 6
)

// Valid reports whether t is one of the defined tile codes.
func (t Tile) Valid() bool {
	switch t {
	case TileVoid, TileFloor, TileFragile, TileBridge, TileSwitch, TileGoal:
		return true
	}
	return false
}

// String returns the lowercase tile name.
func (t Tile) String() string {
	switch t {
	case TileVoid:
		return "void"
	case TileFloor:
		return "floor"
	case TileFragile:
		return "fragile"
	case TileBridge:
		return "bridge"
	case TileSwitch:
		return "switch"
	case TileGoal:
		return "goal"
	default:
		return fmt.Sprintf("tile(%d)", int(t))
	}
}
