package tui

import (
	"bytes"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tumble/internal/core"
	tumblecore "github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
	"github.com/vovakirdan/tui-tumble/internal/metrics"
)

// stubGame reports a fixed state.
type stubGame struct {
	state core.GameState
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.state}
}

func newTestServer() *SSHServer {
	return &SSHServer{
		config:  DefaultSSHServerConfig(),
		metrics: metrics.New(),
		logger:  log.New(io.Discard),
	}
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	return rec.Body.String()
}

func TestRemoteSessionIDs(t *testing.T) {
	s := newTestServer()
	a := s.newRemoteSession("alice")
	b := s.newRemoteSession("alice")

	_, err := uuid.Parse(a.id)
	require.NoError(t, err)
	assert.NotEqual(t, a.id, b.id)
}

func TestRemoteSessionCountsAbandonedRuns(t *testing.T) {
	s := newTestServer()
	rs := s.newRemoteSession("bob")

	rs.setGame(&stubGame{state: core.GameState{Score: 5}})
	rs.setGame(&stubGame{state: core.GameState{Score: 9, GameOver: true}})
	rs.end()

	body := scrape(t, s.metrics)
	assert.Contains(t, body, "tumble_moves_total 5")
	assert.Contains(t, body, "tumble_active_sessions 0")
	assert.Contains(t, body, "tumble_sessions_total 1")
}

func TestGameFactoryWiresListeners(t *testing.T) {
	s := newTestServer()
	rs := s.newRemoteSession("carol")
	var bell bytes.Buffer

	factory := s.gameFactory(rs, &bell)
	g := factory(2)
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 2, g.State().Level)
	assert.Same(t, g, rs.game)

	// Level 1 from spawn: tumbling right falls off the board.
	g = factory(1)
	g.Reset(core.DefaultConfig())
	in := core.NewInputFrame(core.ActionTumbleRight)
	for range 20 {
		g.Step(in)
		in.Clear()
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, "\a", bell.String())
	body := scrape(t, s.metrics)
	assert.Contains(t, body, `tumble_outcomes_total{outcome="lost"} 1`)
	assert.Contains(t, body, "tumble_moves_total 1")
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
	assert.NotNil(t, srv.store)
	assert.Nil(t, srv.metrics)
	assert.DirExists(t, filepath.Join(dir, "keys"))
	assert.NoError(t, srv.Shutdown())
}

var _ tumblecore.Listener = (*Notifier)(nil)
var _ tumblecore.Listener = LogListener{}
