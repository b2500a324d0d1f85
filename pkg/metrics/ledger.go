package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics records plate-ledger activity and operation outcomes.
type LedgerMetrics struct {
	duration *prometheus.HistogramVec
	plates   *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewLedgerMetrics registers the ledger metrics on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_operation_duration_seconds",
		Help:    "Duration of ledger operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	plates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_plates_total",
		Help: "Plates moved through the ledger, by movement kind.",
	}, []string{"movement"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_operation_failures_total",
		Help: "Failed ledger operations.",
	}, []string{"operation"})
	reg.MustRegister(duration, plates, failure)
	return &LedgerMetrics{
		duration: duration,
		plates:   plates,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named operation.
func (m *LedgerMetrics) ObserveDuration(operation string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// AddDonated adds plates credited by a donation.
func (m *LedgerMetrics) AddDonated(plates int) {
	m.addPlates("donated", plates)
}

// AddBooked adds plates debited by a booking.
func (m *LedgerMetrics) AddBooked(plates int) {
	m.addPlates("booked", plates)
}

// AddCollected adds plates marked taken by a collection.
func (m *LedgerMetrics) AddCollected(plates int) {
	m.addPlates("collected", plates)
}

// IncFailure increments the failure counter for the named operation.
func (m *LedgerMetrics) IncFailure(operation string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(operation)).Inc()
}

func (m *LedgerMetrics) addPlates(movement string, plates int) {
	if m == nil || m.plates == nil || plates <= 0 {
		return
	}
	m.plates.WithLabelValues(movement).Add(float64(plates))
}

func normalizeLabel(operation string) string {
	if operation == "" {
		return "unknown"
	}
	return operation
}
