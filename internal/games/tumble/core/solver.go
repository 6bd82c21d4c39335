package core

import (
	"math"

	"github.com/kamstrup/intmap"
)

// Solve searches breadth-first for the shortest tumble sequence that takes
// the block from start to a standing landing on the goal. The switch flag
// never blocks movement, so it is not part of the search state.
func Solve(g *TileGrid, start Block) ([]Direction, bool) {
	start.Phase = Phase{}
	startKey := stateKey(start)

	// parents maps a state to (parent state << 3 | direction taken).
	parents := intmap.New[uint32, uint32](256)
	parents.Put(startKey, startKey<<3)

	queue := []Block{start}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		from := stateKey(b)

		for _, d := range Directions {
			next := b
			next.Tumble(d)
			l := Evaluate(g, next.Extent, next.Center)
			if l.Outcome == Lost {
				continue
			}
			key := stateKey(next)
			if _, seen := parents.Get(key); seen {
				continue
			}
			parents.Put(key, from<<3|uint32(d))
			if l.Outcome == LevelCleared {
				return tracePath(parents, startKey, key), true
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// Hint returns the first move of a shortest solution from the session's
// current state.
func Hint(s *Session) (Direction, bool) {
	if s.Outcome() != Playing || s.Busy() {
		return DirNone, false
	}
	moves, ok := Solve(s.Grid(), s.Block())
	if !ok || len(moves) == 0 {
		return DirNone, false
	}
	return moves[0], true
}

func tracePath(parents *intmap.Map[uint32, uint32], startKey, key uint32) []Direction {
	var rev []Direction
	for key != startKey {
		v, _ := parents.Get(key)
		rev = append(rev, Direction(v&7))
		key = v >> 3
	}
	moves := make([]Direction, len(rev))
	for i, d := range rev {
		moves[len(rev)-1-i] = d
	}
	return moves
}

// stateKey packs orientation and quarter-cell center coordinates.
func stateKey(b Block) uint32 {
	qx := uint32(int(math.Round(b.Center.X*4)) + 128)
	qz := uint32(int(math.Round(b.Center.Z*4)) + 128)
	return uint32(b.Extent.Orientation()) | (qx&0xff)<<2 | (qz&0xff)<<10
}
