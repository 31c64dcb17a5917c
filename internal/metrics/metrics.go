package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymadmin_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymadmin_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembersJoinedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymadmin_members_joined_total",
			Help: "Total number of member registrations",
		},
		[]string{"plan"},
	)

	PaymentsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymadmin_payments_processed_total",
			Help: "Total number of processed membership payments",
		},
		[]string{"plan", "method"},
	)

	RenewalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymadmin_renewals_total",
			Help: "Total number of membership renewals",
		},
		[]string{"plan"},
	)

	SweepRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymadmin_expiry_sweep_runs_total",
			Help: "Total number of expiry sweep runs",
		},
	)

	SweepDeactivationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymadmin_expiry_sweep_deactivations_total",
			Help: "Total number of members deactivated by the expiry sweep",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymadmin_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymadmin_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordJoin(plan string) {
	MembersJoinedTotal.WithLabelValues(plan).Inc()
}

func RecordPayment(plan, method string) {
	PaymentsProcessedTotal.WithLabelValues(plan, method).Inc()
}

func RecordRenewal(plan string) {
	RenewalsTotal.WithLabelValues(plan).Inc()
}

func RecordSweep(deactivated int) {
	SweepRunsTotal.Inc()
	SweepDeactivationsTotal.Add(float64(deactivated))
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
