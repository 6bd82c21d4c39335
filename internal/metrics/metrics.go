// Package metrics exports Prometheus counters for the SSH game server.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-tumble/internal/games/tumble/core"
)

const namespace = "tumble"

// Metrics owns a private registry so several servers (and tests) can
// coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	sessions prometheus.Counter
	active   prometheus.Gauge
	moves    prometheus.Counter
	outcomes *prometheus.CounterVec
	levels   *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "SSH sessions started.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "SSH sessions currently connected.",
		}),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Tumbles completed across all runs.",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcomes_total",
			Help:      "Finished runs by outcome.",
		}, []string{"outcome"}),
		levels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "levels_cleared_total",
			Help:      "Levels cleared, by level number.",
		}, []string{"level"}),
	}
	m.registry.MustRegister(m.sessions, m.active, m.moves, m.outcomes, m.levels)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// StartSession counts a new connection and returns its listener.
func (m *Metrics) StartSession() *SessionListener {
	m.sessions.Inc()
	m.active.Inc()
	return &SessionListener{m: m}
}

// SessionListener feeds one connection's game events into the collectors.
type SessionListener struct {
	m *Metrics

	mu      sync.Mutex
	counted int // moves of the current run already added
	closed  bool
}

func (l *SessionListener) LevelAdvanced(ev core.Event) {
	l.m.levels.WithLabelValues(strconv.Itoa(ev.Level)).Inc()
	l.addMoves(ev.Score, false)
}

func (l *SessionListener) GameEnded(ev core.Event) {
	if ev.Outcome == core.Won {
		l.m.levels.WithLabelValues(strconv.Itoa(ev.Level)).Inc()
	}
	l.m.outcomes.WithLabelValues(ev.Outcome.String()).Inc()
	l.addMoves(ev.Score, true)
}

// Abandon records the moves of a run left before it ended. Pass 0 when
// the run already finished.
func (l *SessionListener) Abandon(score int) {
	l.addMoves(score, true)
}

// End records the moves of an unfinished run and releases the session.
// It is safe to call more than once.
func (l *SessionListener) End(score int) {
	l.Abandon(score)

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.closed = true
		l.m.active.Dec()
	}
}

// addMoves adds the part of score not yet counted. A finished run resets
// the baseline for the next one.
func (l *SessionListener) addMoves(score int, runOver bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if d := score - l.counted; d > 0 {
		l.m.moves.Add(float64(d))
	}
	l.counted = score
	if runOver {
		l.counted = 0
	}
}
