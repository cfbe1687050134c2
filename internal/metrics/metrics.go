package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sofienekhiari/midlandproject/internal/analytics"
	"github.com/sofienekhiari/midlandproject/internal/content"
)

var (
	_ content.FetchRecorder    = (*Metrics)(nil)
	_ analytics.FailureCounter = (*Metrics)(nil)
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	fetchTotal         *prometheus.CounterVec
	fetchSeconds       *prometheus.HistogramVec
	pageRenders        *prometheus.CounterVec
	viewRecordFailures prometheus.Counter
}

// New registers all collectors with reg. Outside tests, pass
// prometheus.DefaultRegisterer so Handler serves them.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}
	m.fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "midland",
		Name:      "content_fetch_total",
		Help:      "Content document fetches by path and status",
	}, []string{"path", "status"})
	m.fetchSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "midland",
		Name:      "content_fetch_duration_seconds",
		Help:      "Content document fetch latency",
	}, []string{"path"})
	m.pageRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "midland",
		Name:      "page_renders_total",
		Help:      "Rendered HTML pages by route",
	}, []string{"route"})
	m.viewRecordFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "midland",
		Name:      "page_view_record_failures_total",
		Help:      "Page view rows that could not be written",
	})

	reg.MustRegister(m.fetchTotal, m.fetchSeconds, m.pageRenders, m.viewRecordFailures)
	return m
}

func (m *Metrics) ObserveFetch(path string, ok bool, elapsed time.Duration) {
	status := "ok"
	if !ok {
		status = "error"
	}
	m.fetchTotal.WithLabelValues(path, status).Inc()
	m.fetchSeconds.WithLabelValues(path).Observe(elapsed.Seconds())
}

func (m *Metrics) PageRendered(route string) {
	m.pageRenders.WithLabelValues(route).Inc()
}

func (m *Metrics) ViewRecordFailed() {
	m.viewRecordFailures.Inc()
}

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
