package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloudfit/interviewd/internal/scheduling"
	"github.com/cloudfit/interviewd/internal/timeslot"
	"github.com/cloudfit/interviewd/pkg/errors"
)

const namespace = "interviewd"

// Booking outcome labels for Collector.BookingsTotal.
const (
	OutcomeScheduled           = "scheduled"
	OutcomeUnknownUser         = "unknown_user"
	OutcomeWrongRole           = "wrong_role"
	OutcomeOutsideAvailability = "outside_availability"
	OutcomeTimeConflict        = "time_conflict"
	OutcomeInvalidRange        = "invalid_range"
	OutcomeError               = "error"
)

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	BookingsTotal      *prometheus.CounterVec
	CancellationsTotal prometheus.Counter
	CompletionsTotal   prometheus.Counter
	ReschedulesTotal   prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path", "status"}),

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome.",
		}, []string{"outcome"}),

		CancellationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "cancellations_total",
			Help:      "Total interviews cancelled.",
		}),

		CompletionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "completions_total",
			Help:      "Total interviews completed.",
		}),

		ReschedulesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduling",
			Name:      "reschedules_total",
			Help:      "Total interviews moved to a new slot.",
		}),
	}
}

// BookingOutcome maps a booking result to its counter label.
func BookingOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeScheduled
	case errors.Is(err, scheduling.ErrUnknownUser):
		return OutcomeUnknownUser
	case errors.Is(err, scheduling.ErrWrongRole):
		return OutcomeWrongRole
	case errors.Is(err, scheduling.ErrOutsideAvailability):
		return OutcomeOutsideAvailability
	case errors.Is(err, scheduling.ErrTimeConflict):
		return OutcomeTimeConflict
	case errors.Is(err, timeslot.ErrInvalidRange):
		return OutcomeInvalidRange
	default:
		return OutcomeError
	}
}

// Handler serves the registry on /metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
