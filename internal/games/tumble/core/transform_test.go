package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTumbleFromSpawn(t *testing.T) {
	tests := []struct {
		dir    Direction
		extent Extent
		center Vec3
	}{
		{DirRight, Extent{X: Long, Up: Short, Z: Short}, Vec3{X: 0.75, Y: -0.25}},
		{DirLeft, Extent{X: Long, Up: Short, Z: Short}, Vec3{X: -0.75, Y: -0.25}},
		{DirForward, Extent{X: Short, Up: Short, Z: Long}, Vec3{Y: -0.25, Z: -0.75}},
		{DirBack, Extent{X: Short, Up: Short, Z: Long}, Vec3{Y: -0.25, Z: 0.75}},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			b := SpawnBlock()
			b.Tumble(tc.dir)
			assert.Equal(t, tc.extent, b.Extent)
			assert.Equal(t, tc.center, b.Center)
			assert.True(t, b.Phase.Idle())
		})
	}
}

func TestTumbleSidewaysKeepsHeight(t *testing.T) {
	// Lying along X and rolled along Z: still lying, no vertical shift.
	b := SpawnBlock()
	b.Tumble(DirRight)
	b.Tumble(DirForward)

	assert.Equal(t, Extent{X: Long, Up: Short, Z: Short}, b.Extent)
	assert.Equal(t, Vec3{X: 0.75, Y: -0.25, Z: -0.5}, b.Center)
}

func TestTumbleTwiceStandsUp(t *testing.T) {
	b := SpawnBlock()
	b.Tumble(DirRight)
	b.Tumble(DirRight)

	assert.Equal(t, StandingExtent, b.Extent)
	assert.Equal(t, Vec3{X: 1.5}, b.Center)
	assert.Equal(t, Cell{Col: 8, Row: 5}, b.Footprint()[0])
}

func TestTumbleRoundTrip(t *testing.T) {
	starts := map[string]Block{
		"standing": SpawnBlock(),
		"lying-x":  NewBlock(Extent{X: Long, Up: Short, Z: Short}, Vec3{X: 0.75, Y: -0.25}),
		"lying-z":  NewBlock(Extent{X: Short, Up: Short, Z: Long}, Vec3{Y: -0.25, Z: 0.75}),
	}
	for name, start := range starts {
		for _, d := range Directions {
			b := start
			b.Tumble(d)
			b.Tumble(d.Opposite())
			if b.Extent != start.Extent || b.Center != start.Center {
				t.Errorf("%s: %s then %s = %s, want %s", name, d, d.Opposite(), b, start)
			}
		}
	}
}

func TestTumblePreservesDimensions(t *testing.T) {
	seq, err := ParseMoves("RRFLBBLFRFLLBR")
	if err != nil {
		t.Fatal(err)
	}
	b := SpawnBlock()
	for i, d := range seq {
		b.Tumble(d)
		e := b.Extent
		longs, shorts := 0, 0
		for _, v := range []float64{e.X, e.Up, e.Z} {
			switch v {
			case Long:
				longs++
			case Short:
				shorts++
			}
		}
		if longs != 1 || shorts != 2 {
			t.Fatalf("move %d (%s): extent %+v is not a permutation of {1, .5, .5}", i, d, e)
		}
		wantY := -0.25
		if e.Standing() {
			wantY = 0
		}
		if b.Center.Y != wantY {
			t.Fatalf("move %d (%s): center y = %v, want %v", i, d, b.Center.Y, wantY)
		}
	}
}

func TestTumbleNoneIsNoop(t *testing.T) {
	b := SpawnBlock()
	b.Tumble(DirNone)
	assert.Equal(t, SpawnBlock(), b)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"l", DirLeft},
		{"Left", DirLeft},
		{"R", DirRight},
		{"forward", DirForward},
		{"up", DirForward},
		{"b", DirBack},
		{" down ", DirBack},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseDirection(%q) = %s, %v; want %s", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseDirection("x"); err == nil {
		t.Error("ParseDirection(\"x\") should fail")
	}
}

func TestMovesNotation(t *testing.T) {
	moves, err := ParseMoves("LR FB")
	assert.NoError(t, err)
	assert.Equal(t, []Direction{DirLeft, DirRight, DirForward, DirBack}, moves)
	assert.Equal(t, "LRFB", FormatMoves(moves))

	_, err = ParseMoves("LQ")
	assert.Error(t, err)
}
