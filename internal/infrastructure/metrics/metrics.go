// Package metrics exposes Prometheus metrics for bill composition,
// enrichment and remote calls.
package metrics

import (
	"net/http"
	"time"

	"billing_service/internal/infrastructure/httpclient"
	"billing_service/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "billing"

type Metrics struct {
	registry *prometheus.Registry

	remoteCalls           *prometheus.CounterVec
	remoteCallDuration    *prometheus.HistogramVec
	billsComposed         *prometheus.CounterVec
	lineItemsPersisted    prometheus.Counter
	lineItemWriteFailures prometheus.Counter
	billsEnriched         prometheus.Counter
	unresolvedItems       prometheus.Counter
}

var (
	_ interfaces.IBillingMetrics = (*Metrics)(nil)
	_ httpclient.Observer        = (*Metrics)(nil)
)

// New registers everything on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		remoteCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remote_calls_total",
			Help:      "Calls to the customer and inventory services by outcome.",
		}, []string{"service", "operation", "outcome"}),
		remoteCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_call_duration_seconds",
			Help:      "Latency of calls to the customer and inventory services.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		billsComposed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_composed_total",
			Help:      "Bills composed, by result (complete or partial).",
		}, []string{"result"}),
		lineItemsPersisted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "line_items_persisted_total",
			Help:      "Line items written while composing bills.",
		}),
		lineItemWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "line_item_write_failures_total",
			Help:      "Line item writes that failed while composing bills.",
		}),
		billsEnriched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_enriched_total",
			Help:      "Full bill views built.",
		}),
		unresolvedItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enrichment_unresolved_items_total",
			Help:      "Line items whose product could not be resolved during enrichment.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.remoteCalls,
		m.remoteCallDuration,
		m.billsComposed,
		m.lineItemsPersisted,
		m.lineItemWriteFailures,
		m.billsEnriched,
		m.unresolvedItems,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRemoteCall(service, operation, outcome string, elapsed time.Duration) {
	m.remoteCalls.WithLabelValues(service, operation, outcome).Inc()
	m.remoteCallDuration.WithLabelValues(service, operation).Observe(elapsed.Seconds())
}

func (m *Metrics) BillComposed(persistedItems, failedItems int) {
	result := "complete"
	if failedItems > 0 {
		result = "partial"
	}
	m.billsComposed.WithLabelValues(result).Inc()
	m.lineItemsPersisted.Add(float64(persistedItems))
	m.lineItemWriteFailures.Add(float64(failedItems))
}

func (m *Metrics) BillEnriched(items, unresolvedItems int) {
	m.billsEnriched.Inc()
	m.unresolvedItems.Add(float64(unresolvedItems))
}
