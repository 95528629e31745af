package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	AppointmentsCreated   prometheus.Counter
	AppointmentsConfirmed prometheus.Counter
	StatusChanges         *prometheus.CounterVec
	NotificationsSent     *prometheus.CounterVec
	ScreeningRequests     *prometheus.CounterVec
	AnalysisTime          prometheus.Histogram
	ErrorsCount           *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		AppointmentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_created_total",
			Help:      "The total number of appointment requests booked",
		}),
		AppointmentsConfirmed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_confirmed_total",
			Help:      "The total number of confirmations committed with clinical history",
		}),
		StatusChanges: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_changes_total",
			Help:      "The total number of appointment status transitions",
		}, []string{"status"}),
		NotificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "The total number of confirmation notifications dispatched",
		}, []string{"outcome"}),
		ScreeningRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "screening_requests_total",
			Help:      "The total number of screening analysis calls",
		}, []string{"outcome"}),
		AnalysisTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "screening_analysis_time_seconds",
			Help:      "Time taken by the external classification call",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
