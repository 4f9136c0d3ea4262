// Package telemetry exposes a running transform's personality state as
// Prometheus metrics (spec §10.3).
//
// The teacher's pkg/monitoring/prometheus.Client wraps client_golang's
// query side (api.NewClient + v1.API) to read metrics back out of a
// Prometheus server the chaos harness assumes is already running. kinda has
// no such server to query — there's nothing upstream producing metrics
// about a transform run except the run itself. So this package keeps the
// same top-level dependency, prometheus/client_golang, but reaches for its
// exposition half instead: GaugeVec/CounterVec plus promhttp, the side the
// teacher's client.go never touches. client.go's query-API shape (v1.API,
// model.Value, QueryResult) has no exposition counterpart and could not be
// adapted line-for-line; this file is grounded on client_golang's own
// documented exposition pattern rather than on a teacher file.
package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kmayhew2020/kinda-lang-sub002/pkg/personality"
)

// Metrics holds the Prometheus collectors kinda exposes about its own
// transform runs.
type Metrics struct {
	registry *prometheus.Registry

	instability       *prometheus.GaugeVec
	executionCount    *prometheus.GaugeVec
	drawCounts        *prometheus.GaugeVec
	filesTransformed  *prometheus.CounterVec
	constructsMatched *prometheus.CounterVec

	server *http.Server
}

// New creates a Metrics registry with kinda's collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		instability: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "kinda",
			Name:      "instability_level",
			Help:      "Current instability feedback value in [0,1] for a personality context.",
		}, []string{"context", "mood"}),
		executionCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "kinda",
			Name:      "execution_count",
			Help:      "Total fuzzy-construct executions observed by a personality context.",
		}, []string{"context", "mood"}),
		drawCounts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "kinda",
			Name:      "construct_draws",
			Help:      "Cumulative RNG draws per construct name for a personality context.",
		}, []string{"context", "mood", "construct"}),
		filesTransformed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kinda",
			Name:      "files_transformed_total",
			Help:      "Source files processed by a transform run, by outcome.",
		}, []string{"status"}),
		constructsMatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kinda",
			Name:      "constructs_matched_total",
			Help:      "Fuzzy constructs matched during the scan pass, by construct name.",
		}, []string{"construct"}),
	}

	registry.MustRegister(m.instability, m.executionCount, m.drawCounts, m.filesTransformed, m.constructsMatched)
	return m
}

// Observe records a personality context's current snapshot under the given
// context label (typically the source file or run ID it belongs to).
func (m *Metrics) Observe(contextLabel string, snap personality.Snapshot) {
	m.instability.WithLabelValues(contextLabel, snap.Profile.Name).Set(snap.InstabilityLevel)
	m.executionCount.WithLabelValues(contextLabel, snap.Profile.Name).Set(float64(snap.ExecutionCount))
	for construct, count := range snap.DrawCounts {
		m.drawCounts.WithLabelValues(contextLabel, snap.Profile.Name, construct).Set(float64(count))
	}
}

// RecordFileTransformed increments the per-outcome file counter.
func (m *Metrics) RecordFileTransformed(status string) {
	m.filesTransformed.WithLabelValues(status).Inc()
}

// RecordConstructMatch increments the per-construct match counter.
func (m *Metrics) RecordConstructMatch(construct string) {
	m.constructsMatched.WithLabelValues(construct).Inc()
}

// Handler returns an http.Handler serving the registered collectors in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing the metrics handler at path and
// blocks until the server errors or ctx is cancelled. Callers typically run
// this in a goroutine.
func (m *Metrics) Serve(ctx context.Context, addr, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())

	m.server = &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return m.server.Shutdown(context.Background())
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("telemetry: serve: %w", err)
		}
		return nil
	}
}
