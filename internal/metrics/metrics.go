// Package metrics exports simulation counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"life-canvas/internal/session"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder tracks generation, population and run state. It implements
// session.Observer.
type Recorder struct {
	generation prometheus.Gauge
	population prometheus.Gauge
	running    prometheus.Gauge
	speed      prometheus.Gauge
	steps      prometheus.Counter
	resets     prometheus.Counter
	edits      prometheus.Counter

	gatherer prometheus.Gatherer
}

var _ session.Observer = (*Recorder)(nil)

// New registers the collectors with reg. If reg also implements
// prometheus.Gatherer it is used by Handler.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_generation",
			Help: "Generations since the board was last reset",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_population",
			Help: "Number of live cells",
		}),
		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_running",
			Help: "1 while the simulation is running, 0 when stopped",
		}),
		speed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "life_speed_generations_per_second",
			Help: "Configured simulation speed",
		}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_steps_total",
			Help: "Total number of generations computed",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_resets_total",
			Help: "Total number of clears, randomizations and pattern loads",
		}),
		edits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_cell_edits_total",
			Help: "Total number of cells toggled or painted by the user",
		}),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, c := range []prometheus.Collector{r.generation, r.population, r.running, r.speed, r.steps, r.resets, r.edits} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		r.gatherer = g
	}
	return r, nil
}

// Observe updates the collectors after a session change.
func (r *Recorder) Observe(ev session.Event, st session.Stats) {
	switch ev {
	case session.EventStep:
		r.steps.Inc()
	case session.EventReset:
		r.resets.Inc()
	case session.EventEdit:
		r.edits.Inc()
	}
	r.generation.Set(float64(st.Generation))
	r.population.Set(float64(st.Population))
	r.speed.Set(float64(st.TPS))
	if st.Running {
		r.running.Set(1)
	} else {
		r.running.Set(0)
	}
}

// Handler serves the registered metrics in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return fmt.Errorf("metrics listener: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics listener: %w", err)
	}
	return nil
}
