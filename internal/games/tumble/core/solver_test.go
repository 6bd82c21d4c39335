package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shortest solutions per level, in move order L, R, F, B.
var shortest = map[int]int{1: 26, 2: 15, 3: 9}

func TestSolveBuiltInLevels(t *testing.T) {
	for level := 1; level <= LevelCount; level++ {
		g, err := Load(level)
		require.NoError(t, err)

		moves, ok := Solve(g, SpawnBlock())
		require.True(t, ok, "level %d should be solvable", level)
		assert.Len(t, moves, shortest[level], "level %d: %s", level, FormatMoves(moves))
	}
}

func TestSolveThirdLevelPath(t *testing.T) {
	g, _ := Load(3)
	moves, ok := Solve(g, SpawnBlock())
	require.True(t, ok)
	assert.Equal(t, "RRFLFLLLL", FormatMoves(moves))
}

func TestSolveUnsolvable(t *testing.T) {
	var l Layout
	l[5][5] = int(TileFloor)
	l[1][8] = int(TileGoal)
	g, err := NewGrid(0, l)
	require.NoError(t, err)

	_, ok := Solve(g, SpawnBlock())
	assert.False(t, ok)
}

func TestFullCampaignWins(t *testing.T) {
	rec := &recordingListener{}
	s, err := NewSession(Options{Listener: rec})
	require.NoError(t, err)

	total := 0
	for level := 1; level <= LevelCount; level++ {
		require.Equal(t, level, s.Level())
		moves, ok := Solve(s.Grid(), s.Block())
		require.True(t, ok)
		roll(t, s, moves...)
		total += len(moves)
	}

	assert.Equal(t, Won, s.Outcome())
	assert.Equal(t, total, s.Score())
	assert.Equal(t, 50, total)
	require.Len(t, rec.advanced, 2)
	assert.Equal(t, 1, rec.advanced[0].Level)
	assert.Equal(t, 2, rec.advanced[1].Level)
	require.Len(t, rec.ended, 1)
	assert.Equal(t, Event{Level: 3, Score: 50, Outcome: Won}, rec.ended[0])
	assert.False(t, s.Command(DirLeft))
}

func TestHint(t *testing.T) {
	s, err := NewSession(Options{})
	require.NoError(t, err)

	d, ok := Hint(s)
	require.True(t, ok)
	assert.Equal(t, DirLeft, d)

	s.Command(d)
	_, ok = Hint(s)
	assert.False(t, ok, "no hint mid-tumble")
}
