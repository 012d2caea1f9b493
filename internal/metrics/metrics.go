package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admission_checks_total",
			Help: "Total number of admission checks",
		},
		[]string{"endpoint"},
	)

	AdmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admission_admitted_total",
			Help: "Total number of admitted requests",
		},
		[]string{"endpoint"},
	)

	DeniedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admission_denied_total",
			Help: "Total number of denied requests",
		},
		[]string{"endpoint"},
	)

	ErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "admission_errors_total",
			Help: "Total number of internal admission engine errors",
		},
	)

	CheckDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admission_check_duration_seconds",
			Help:    "Duration of admission checks in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

func Register() {
	prometheus.MustRegister(
		ChecksTotal,
		AdmittedTotal,
		DeniedTotal,
		ErrorsTotal,
		CheckDuration,
	)
}
