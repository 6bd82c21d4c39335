package core

import (
	"fmt"
	"strings"
)

// Block dimensions in world units.
const (
	Short = 0.5
	Long  = 1.0
)

// Vec3 is a world-space position.
type Vec3 struct {
	X, Y, Z float64
}

// Extent holds the block's size along each world axis.
type Extent struct {
	X  float64 // along X
	Up float64 // height
	Z  float64 // along Z
}

// StandingExtent is the spawn shape: one cell wide, two cells tall.
var StandingExtent = Extent{X: Short, Up: Long, Z: Short}

// Standing reports whether the block is upright.
func (e Extent) Standing() bool {
	return e.Up == Long
}

// Orientation names the block's long axis.
type Orientation int

const (
	Upright Orientation = iota
	LyingX
	LyingZ
)

func (o Orientation) String() string {
	switch o {
	case Upright:
		return "standing"
	case LyingX:
		return "lying-x"
	case LyingZ:
		return "lying-z"
	default:
		return "unknown"
	}
}

// Orientation classifies the extent by its long axis.
func (e Extent) Orientation() Orientation {
	switch {
	case e.Up == Long:
		return Upright
	case e.X == Long:
		return LyingX
	default:
		return LyingZ
	}
}

// Axis is a horizontal world axis a tumble rolls along.
type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

// Direction is one of the four tumble commands.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirForward
	DirBack
)

// Directions lists the four tumble directions in solver order.
var Directions = [4]Direction{DirLeft, DirRight, DirForward, DirBack}

// Roll returns the axis the block travels along and the sign of travel.
// Left/Right move along X; Forward moves toward -Z, Back toward +Z.
func (d Direction) Roll() (Axis, float64) {
	switch d {
	case DirLeft:
		return AxisX, -1
	case DirRight:
		return AxisX, 1
	case DirForward:
		return AxisZ, -1
	case DirBack:
		return AxisZ, 1
	default:
		return AxisX, 0
	}
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirForward:
		return DirBack
	case DirBack:
		return DirForward
	default:
		return DirNone
	}
}

// Valid reports whether d is one of the four tumble directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirBack
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirForward:
		return "forward"
	case DirBack:
		return "back"
	default:
		return "none"
	}
}

// Letter returns the single-letter move notation (L, R, F, B).
func (d Direction) Letter() string {
	if !d.Valid() {
		return "?"
	}
	return strings.ToUpper(d.String()[:1])
}

// ParseDirection accepts a full name or the single-letter notation.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left":
		return DirLeft, nil
	case "r", "right":
		return DirRight, nil
	case "f", "forward", "up":
		return DirForward, nil
	case "b", "back", "down":
		return DirBack, nil
	}
	return DirNone, fmt.Errorf("unknown direction %q", s)
}

// FormatMoves renders a move list in letter notation, e.g. "LLBR".
func FormatMoves(moves []Direction) string {
	var sb strings.Builder
	for _, d := range moves {
		sb.WriteString(d.Letter())
	}
	return sb.String()
}

// ParseMoves parses letter notation produced by FormatMoves.
func ParseMoves(s string) ([]Direction, error) {
	moves := make([]Direction, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			continue
		}
		d, err := ParseDirection(string(r))
		if err != nil {
			return nil, err
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// Phase is the animation state of the block.
type Phase struct {
	Dir   Direction // DirNone while idle
	Angle float64   // degrees in [0, 90) while tumbling
}

// Idle reports whether no tumble is in flight.
func (p Phase) Idle() bool {
	return p.Dir == DirNone
}

// Block is the block's shape, position and animation phase.
type Block struct {
	Extent Extent
	Center Vec3
	Phase  Phase

	// lastSign is the sign of the previous vertical correction.
	lastSign float64
}

// SpawnBlock returns a standing block at the board origin.
func SpawnBlock() Block {
	return Block{
		Extent:   StandingExtent,
		Center:   Vec3{},
		lastSign: 1,
	}
}

// NewBlock returns an idle block with the given shape and position.
func NewBlock(e Extent, c Vec3) Block {
	sign := 1.0
	if !e.Standing() {
		sign = -1
	}
	return Block{Extent: e, Center: c, lastSign: sign}
}

// Footprint returns the cells under the block's base.
func (b Block) Footprint() []Cell {
	return Footprint(b.Extent, b.Center)
}

func (b Block) String() string {
	return fmt.Sprintf("%s at (%.2f, %.2f, %.2f)", b.Extent.Orientation(), b.Center.X, b.Center.Y, b.Center.Z)
}
