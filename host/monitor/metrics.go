package monitor

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks what the firmware reported.
type Metrics struct {
	temperature prometheus.Gauge
	events      *prometheus.CounterVec
	registry    *prometheus.Registry
}

// NewMetrics creates the collectors on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		temperature: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "co2sensor",
			Name:      "temperature_celsius",
			Help:      "Last on-chip temperature reported by the firmware.",
		}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "co2sensor",
			Name:      "log_events_total",
			Help:      "Firmware log events by level.",
		}, []string{"level"}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.temperature, m.events)
	return m
}

// Observe records one event.
func (m *Metrics) Observe(e Event) {
	m.events.WithLabelValues(string(e.Level)).Inc()
	if c, ok := e.Temperature(); ok {
		m.temperature.Set(c)
	}
}

// Registry exposes the registry for scraping and tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
