package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its directories")
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	id, err := store.SaveRun(Run{GameID: "tumble", StartLevel: 1, LevelReached: 3, Outcome: OutcomeWon, Moves: 50})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	run, err := store.RunByID(id)
	require.NoError(t, err)
	assert.Equal(t, 50, run.Moves)
}

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		GameID:       "tumble",
		StartLevel:   1,
		LevelReached: 2,
		Outcome:      OutcomeLost,
		Moves:        31,
		Path:         "LLLB",
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err, "generated id should be a UUID")

	run, err := store.RunByID(id)
	require.NoError(t, err)
	assert.Equal(t, "tumble", run.GameID)
	assert.Equal(t, 2, run.LevelReached)
	assert.Equal(t, OutcomeLost, run.Outcome)
	assert.Equal(t, "LLLB", run.Path)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	got, err := store.SaveRun(Run{ID: id, GameID: "tumble", StartLevel: 1, LevelReached: 1, Outcome: OutcomeLost, Moves: 1})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = store.SaveRun(Run{ID: id, GameID: "tumble", StartLevel: 1, LevelReached: 1, Outcome: OutcomeLost, Moves: 1})
	assert.Error(t, err, "duplicate id must be rejected")
}

func TestRunByIDNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.RunByID("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestBestRunsOrdersByFewestMoves(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Outcome: OutcomeWon, Moves: 70},
		{Outcome: OutcomeLost, Moves: 3},
		{Outcome: OutcomeWon, Moves: 50},
		{Outcome: OutcomeWon, Moves: 62},
	} {
		r.GameID, r.StartLevel, r.LevelReached = "tumble", 1, 3
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}
	_, err := store.SaveRun(Run{GameID: "other", StartLevel: 1, LevelReached: 3, Outcome: OutcomeWon, Moves: 1})
	require.NoError(t, err)

	best, err := store.BestRuns("tumble", 2)
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, 50, best[0].Moves)
	assert.Equal(t, 62, best[1].Moves)

	all, err := store.BestRuns("tumble", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3, "lost runs are not ranked")
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		_, err := store.SaveRun(Run{GameID: "tumble", StartLevel: 1, LevelReached: 1, Outcome: OutcomeLost, Moves: i})
		require.NoError(t, err)
	}

	recent, err := store.RecentRuns("tumble", 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 4, recent[0].Moves, "newest first")
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("tumble")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Runs)
	assert.Equal(t, 0, empty.BestMoves)
	assert.True(t, empty.LastPlayed.IsZero())

	for _, r := range []Run{
		{Outcome: OutcomeWon, Moves: 60},
		{Outcome: OutcomeLost, Moves: 10},
		{Outcome: OutcomeWon, Moves: 50},
	} {
		r.GameID, r.StartLevel, r.LevelReached = "tumble", 1, 3
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	stats, err := store.Stats("tumble")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Runs)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 50, stats.BestMoves)
	assert.Equal(t, int64(120), stats.TotalMoves)
	assert.InDelta(t, 40.0, stats.AvgMoves, 1e-9)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveRun(Run{GameID: "tumble", StartLevel: 1, LevelReached: 3, Outcome: OutcomeWon, Moves: 50})
	require.NoError(t, err)
	_, err = store.SaveRun(Run{GameID: "other", StartLevel: 1, LevelReached: 3, Outcome: OutcomeWon, Moves: 9})
	require.NoError(t, err)

	require.NoError(t, store.Clear("tumble"))

	stats, err := store.Stats("tumble")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Runs)
	assert.Equal(t, 0, stats.Wins)

	other, err := store.BestRuns("other", 10)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}
