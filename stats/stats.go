// Package stats aggregates the counters emitted while connecting location
// references. Every counter is kept as an atomic in-process value and
// mirrored to a Prometheus collector registered on the caller's registry.
package stats

import (
	"log/slog"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roadref"

// Stats counts connection outcomes. The zero value is not usable; call New.
//
// Thread Safety: safe for concurrent use.
type Stats struct {
	noShortestPathFound atomic.Uint64
	connected           atomic.Uint64

	noShortestPathFoundTotal prometheus.Counter
	connectedTotal           prometheus.Counter
}

// New creates Stats whose Prometheus counters are registered on reg. A nil reg
// keeps the counters unregistered, which is convenient in tests and one-shot
// tools.
func New(reg prometheus.Registerer) *Stats {
	factory := promauto.With(reg)

	return &Stats{
		noShortestPathFoundTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_shortest_path_found_total",
			Help:      "Location references rejected because a segment could not be connected.",
		}),
		connectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connected_total",
			Help:      "Location references whose segments were all connected.",
		}),
	}
}

// IncNoShortestPathFound records one reference that failed to connect.
func (s *Stats) IncNoShortestPathFound() {
	s.noShortestPathFound.Add(1)
	s.noShortestPathFoundTotal.Inc()
}

// IncConnected records one reference whose segments were all connected.
func (s *Stats) IncConnected() {
	s.connected.Add(1)
	s.connectedTotal.Inc()
}

// NoShortestPathFound returns the number of failed references.
func (s *Stats) NoShortestPathFound() uint64 { return s.noShortestPathFound.Load() }

// Connected returns the number of connected references.
func (s *Stats) Connected() uint64 { return s.connected.Load() }

// LogValue renders a snapshot for structured logs.
func (s *Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("connected", s.Connected()),
		slog.Uint64("no_shortest_path_found", s.NoShortestPathFound()),
	)
}
