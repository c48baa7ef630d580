// Package telemetry exposes Prometheus observability primitives for the
// parcel tracking engine. All methods are safe on a nil receiver, so code
// paths under test can run without a registry.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	shipmentsCreated   *prometheus.CounterVec
	statusTransitions  *prometheus.CounterVec
	capacityRejections *prometheus.CounterVec
	ledgerEvents       *prometheus.CounterVec
	ledgerErrors       prometheus.Counter
}

// NewMetrics registers and returns the engine's Prometheus metrics.
func NewMetrics() *Metrics {
	shipmentsCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parceltrack_shipments_created_total",
		Help: "Shipments created, by rate tier.",
	}, []string{"tier"})

	statusTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parceltrack_status_transitions_total",
		Help: "Completed status transitions, by resulting status label.",
	}, []string{"status"})

	capacityRejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parceltrack_capacity_rejections_total",
		Help: "Operations refused because a warehouse or vehicle was at capacity.",
	}, []string{"resource"})

	ledgerEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "parceltrack_ledger_events_total",
		Help: "Tracking ledger appends, by event kind.",
	}, []string{"kind"})

	ledgerErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "parceltrack_ledger_errors_total",
		Help: "Tracking ledger appends rejected as invalid.",
	})

	prometheus.MustRegister(
		shipmentsCreated,
		statusTransitions,
		capacityRejections,
		ledgerEvents,
		ledgerErrors,
	)

	return &Metrics{
		shipmentsCreated:   shipmentsCreated,
		statusTransitions:  statusTransitions,
		capacityRejections: capacityRejections,
		ledgerEvents:       ledgerEvents,
		ledgerErrors:       ledgerErrors,
	}
}

// ObserveShipmentCreated counts a shipment creation for the tier.
func (m *Metrics) ObserveShipmentCreated(tier string) {
	if m == nil {
		return
	}
	m.shipmentsCreated.WithLabelValues(sanitizeLabel(tier)).Inc()
}

// ObserveStatusTransition counts a completed transition to the given label.
func (m *Metrics) ObserveStatusTransition(status string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(sanitizeLabel(status)).Inc()
}

// ObserveCapacityRejection counts a capacity refusal on a resource kind
// ("warehouse" or "vehicle").
func (m *Metrics) ObserveCapacityRejection(resource string) {
	if m == nil {
		return
	}
	m.capacityRejections.WithLabelValues(sanitizeLabel(resource)).Inc()
}

// ObserveLedgerEvent counts a successful ledger append of the given kind.
func (m *Metrics) ObserveLedgerEvent(kind string) {
	if m == nil {
		return
	}
	m.ledgerEvents.WithLabelValues(sanitizeLabel(kind)).Inc()
}

// ObserveLedgerError counts a rejected ledger append.
func (m *Metrics) ObserveLedgerError() {
	if m == nil {
		return
	}
	m.ledgerErrors.Inc()
}

func sanitizeLabel(val string) string {
	if val == "" {
		return "unknown"
	}
	return val
}
