// Package metrics exposes run counters over a small HTTP endpoint.
package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/parley-sh/parley/pkg/domain"
)

// Action outcomes recorded per executed action.
const (
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeCanceled = "canceled"
)

// Recorder counts executed actions and prompt responses. It owns a private
// registry so embedding applications never collide with it.
type Recorder struct {
	registry  *prometheus.Registry
	actions   *prometheus.CounterVec
	responses *prometheus.CounterVec
}

// NewRecorder creates a recorder with registered collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_actions_total",
				Help: "Actions executed, by outcome.",
			},
			[]string{"outcome"},
		),
		responses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_responses_total",
				Help: "Interaction responses, by prompt kind and response kind.",
			},
			[]string{"kind", "response"},
		),
	}
	r.registry.MustRegister(r.actions, r.responses)
	return r
}

// ActionRun records one executed action.
func (r *Recorder) ActionRun(outcome string) {
	r.actions.WithLabelValues(outcome).Inc()
}

// Response records one interaction outcome.
func (r *Recorder) Response(kind domain.InteractionKind, resp domain.ResponseKind) {
	r.responses.WithLabelValues(string(kind), string(resp)).Inc()
}

// Handler returns the HTTP surface serving /metrics.
func (r *Recorder) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	return mux
}
