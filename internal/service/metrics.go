package service

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation outcome labels.
const (
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusInvalid  = "invalid"
	StatusConflict = "conflict"
	StatusError    = "error"
)

// Metrics holds the Prometheus collectors recorded by the task service.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	stored     prometheus.Gauge
}

// NewMetrics creates the task service collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tasks_operations_total",
				Help: "Total number of task service operations by outcome",
			},
			[]string{"operation", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tasks_operation_duration_seconds",
				Help:    "Duration of task service operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		stored: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tasks_stored",
				Help: "Number of tasks currently held by the store",
			},
		),
	}
}

// observe records the outcome and duration of one operation.
func (m *Metrics) observe(operation string, start time.Time, err error) {
	m.operations.WithLabelValues(operation, outcome(err)).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// setStored records the current store size.
func (m *Metrics) setStored(n int) {
	m.stored.Set(float64(n))
}

// outcome classifies err into a status label.
func outcome(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrTaskNotFound):
		return StatusNotFound
	case errors.Is(err, ErrTaskExists):
		return StatusConflict
	case isValidation(err), errors.Is(err, ErrInvalidSortKey):
		return StatusInvalid
	default:
		return StatusError
	}
}
