package core

// heightCorrection is the vertical shift applied on a standing/lying change.
const heightCorrection = 0.25

// Tumble rolls the block one quarter turn in dir and returns the landed
// extent, center and correction sign. It does not touch phase.
//
// The block pivots on the bottom edge of its leading face, so the center
// travels half the old extent along the axis plus half the old height.
func Tumble(e Extent, c Vec3, dir Direction, lastSign float64) (Extent, Vec3, float64) {
	axis, sign := dir.Roll()
	if sign == 0 {
		return e, c, lastSign
	}

	along := &e.X
	pos := &c.X
	if axis == AxisZ {
		along = &e.Z
		pos = &c.Z
	}

	*pos += sign * (*along/2 + e.Up/2)
	if *along != e.Up {
		c.Y -= heightCorrection * lastSign
	}
	*along, e.Up = e.Up, *along

	newSign := 1.0
	if !e.Standing() {
		newSign = -1
	}
	return e, c, newSign
}

// Tumble applies the transform to b and leaves it idle.
func (b *Block) Tumble(dir Direction) {
	b.Extent, b.Center, b.lastSign = Tumble(b.Extent, b.Center, dir, b.lastSign)
	b.Phase = Phase{}
}
