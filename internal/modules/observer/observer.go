package observer

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reusedev/draw-edit/internal/consts"
)

const (
	EventEditOutcome = "edit_outcome"
	EventHTTPRequest = "http_request"
)

type Observer interface {
	Update(event string, data interface{})
}

// HTTPRequest is the payload of EventHTTPRequest.
type HTTPRequest struct {
	Method   string
	Route    string
	Status   int
	Duration time.Duration
}

type Metrics struct {
	registry        *prometheus.Registry
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	editOutcomes    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "draw_edit_http_requests_total",
			Help: "Total HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "draw_edit_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		editOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "draw_edit_edit_outcomes_total",
			Help: "Image edit requests by outcome.",
		}, []string{"outcome"}),
	}
	registry.MustRegister(
		m.requestTotal,
		m.requestDuration,
		m.editOutcomes,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Update ignores events it does not know and payloads of the wrong type.
func (m *Metrics) Update(event string, data interface{}) {
	switch event {
	case EventEditOutcome:
		if outcome, ok := data.(consts.EditOutcome); ok {
			m.editOutcomes.WithLabelValues(outcome.String()).Inc()
		}
	case EventHTTPRequest:
		if req, ok := data.(HTTPRequest); ok {
			status := strconv.Itoa(req.Status)
			m.requestTotal.WithLabelValues(req.Method, req.Route, status).Inc()
			m.requestDuration.WithLabelValues(req.Method, req.Route, status).Observe(req.Duration.Seconds())
		}
	}
}

type nop struct{}

func (nop) Update(string, interface{}) {}

// Nop discards every event.
func Nop() Observer {
	return nop{}
}
