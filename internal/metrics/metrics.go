// Package metrics exposes daemon counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the daemon's collectors on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	messagesSent   *prometheus.CounterVec
	statusChanges  *prometheus.CounterVec
	deliveries     *prometheus.CounterVec
	handlerErrors  *prometheus.CounterVec
	subscriptions  prometheus.Gauge
	sessions       prometheus.Gauge
	outboxExported prometheus.Counter
	outboxFailed   prometheus.Counter
	rpcs           *prometheus.CounterVec
	relayedIn      prometheus.Counter
	relayedOut     prometheus.Counter
	relayDropped   prometheus.Counter
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		messagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_messages_sent_total",
			Help: "Messages appended, by type.",
		}, []string{"type"}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_message_status_changes_total",
			Help: "Delivery status steps applied, by target status.",
		}, []string{"status"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_fanout_deliveries_total",
			Help: "Events handed to subscription handlers, by topic family.",
		}, []string{"family"}),
		handlerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_fanout_handler_errors_total",
			Help: "Subscription handler errors and panics, by topic family.",
		}, []string{"family"}),
		subscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parley_fanout_subscriptions",
			Help: "Active fan-out subscriptions.",
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "parley_sessions_active",
			Help: "Open client session streams.",
		}),
		outboxExported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parley_outbox_exported_total",
			Help: "Outbox records exported.",
		}),
		outboxFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parley_outbox_export_failures_total",
			Help: "Outbox records whose export attempt failed.",
		}),
		rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_rpc_requests_total",
			Help: "gRPC requests handled, by method and status code.",
		}, []string{"method", "code"}),
		relayedIn: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parley_relay_received_total",
			Help: "Fan-out events received from other instances.",
		}),
		relayedOut: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parley_relay_sent_total",
			Help: "Fan-out events sent to other instances.",
		}),
		relayDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parley_relay_dropped_total",
			Help: "Fan-out events not sent to other instances because the relay queue was full.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.messagesSent, m.statusChanges, m.deliveries, m.handlerErrors,
		m.subscriptions, m.sessions, m.outboxExported, m.outboxFailed,
		m.rpcs, m.relayedIn, m.relayedOut, m.relayDropped,
	)
	return m
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// MessageSent counts an appended message.
func (m *Metrics) MessageSent(msgType string) {
	if m != nil {
		m.messagesSent.WithLabelValues(msgType).Inc()
	}
}

// StatusChanged counts one delivery status step.
func (m *Metrics) StatusChanged(to string) {
	if m != nil {
		m.statusChanges.WithLabelValues(to).Inc()
	}
}

// Delivered implements bus.Observer.
func (m *Metrics) Delivered(family string) {
	if m != nil {
		m.deliveries.WithLabelValues(family).Inc()
	}
}

// HandlerFailed implements bus.Observer.
func (m *Metrics) HandlerFailed(family string) {
	if m != nil {
		m.handlerErrors.WithLabelValues(family).Inc()
	}
}

// SubscriptionsChanged implements bus.Observer.
func (m *Metrics) SubscriptionsChanged(delta int) {
	if m != nil {
		m.subscriptions.Add(float64(delta))
	}
}

// SessionOpened tracks an open session stream.
func (m *Metrics) SessionOpened() {
	if m != nil {
		m.sessions.Inc()
	}
}

// SessionClosed tracks a closed session stream.
func (m *Metrics) SessionClosed() {
	if m != nil {
		m.sessions.Dec()
	}
}

// Exported implements outbox.Observer.
func (m *Metrics) Exported(n int) {
	if m != nil {
		m.outboxExported.Add(float64(n))
	}
}

// ExportFailed implements outbox.Observer.
func (m *Metrics) ExportFailed(n int) {
	if m != nil {
		m.outboxFailed.Add(float64(n))
	}
}

// RPC counts a handled gRPC request.
func (m *Metrics) RPC(method, code string) {
	if m != nil {
		m.rpcs.WithLabelValues(method, code).Inc()
	}
}

// RelayReceived counts an event republished from another instance.
func (m *Metrics) RelayReceived() {
	if m != nil {
		m.relayedIn.Inc()
	}
}

// RelaySent counts an event sent to other instances.
func (m *Metrics) RelaySent() {
	if m != nil {
		m.relayedOut.Inc()
	}
}

// RelayDropped counts an event the relay queue had no room for.
func (m *Metrics) RelayDropped() {
	if m != nil {
		m.relayDropped.Inc()
	}
}
