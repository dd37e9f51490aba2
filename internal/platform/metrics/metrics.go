package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	HTTPRequestDuration *prometheus.HistogramVec
	LoginAttempts       *prometheus.CounterVec
	AgreementsGenerated prometheus.Counter
	AgreementFailures   *prometheus.CounterVec
	AlertsRaised        prometheus.Counter
	TenantsCreated      prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rentora_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rentora_login_attempts_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		AgreementsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rentora_agreements_generated_total",
			Help: "Total rental agreements generated.",
		}),
		AgreementFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rentora_agreement_failures_total",
			Help: "Agreement generation failures by reason.",
		}, []string{"reason"}),
		AlertsRaised: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rentora_expiry_alerts_raised_total",
			Help: "Expiry alerts created by the background worker.",
		}),
		TenantsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rentora_tenants_created_total",
			Help: "Total tenants created.",
		}),
	}
}
