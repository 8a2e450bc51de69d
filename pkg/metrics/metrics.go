package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	FormsCreatedTotal     prometheus.Counter
	SubmissionsTotal      *prometheus.CounterVec
	ValidationErrorsTotal *prometheus.CounterVec
	RateLimitedTotal      prometheus.Counter
}

// New создает метрики и регистрирует их в registerer
func New(serviceName string, registerer prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		FormsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_forms_created_total",
			Help:        "Total number of booking forms initialized",
			ConstLabels: constLabels,
		}),

		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_form_submissions_total",
			Help:        "Booking form submission attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		ValidationErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_form_validation_errors_total",
			Help:        "Validation errors by field and kind",
			ConstLabels: constLabels,
		}, []string{"field", "kind"}),

		RateLimitedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "http_rate_limited_total",
			Help:        "Requests rejected by the rate limiter",
			ConstLabels: constLabels,
		}),
	}

	registerer.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.FormsCreatedTotal,
		m.SubmissionsTotal,
		m.ValidationErrorsTotal,
		m.RateLimitedTotal,
	)

	return m
}

// IncSubmission counts a submission attempt
func (m *Metrics) IncSubmission(outcome string) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
}

// IncValidationError counts a field error reported on submission
func (m *Metrics) IncValidationError(field, kind string) {
	m.ValidationErrorsTotal.WithLabelValues(field, kind).Inc()
}

// IncFormCreated counts an initialized form
func (m *Metrics) IncFormCreated() {
	m.FormsCreatedTotal.Inc()
}

// IncRateLimited counts a rejected request
func (m *Metrics) IncRateLimited() {
	m.RateLimitedTotal.Inc()
}

// Nop метрики-заглушка, когда сбор метрик выключен
type Nop struct{}

func (Nop) IncSubmission(string) {}
func (Nop) IncValidationError(string, string) {}
func (Nop) IncFormCreated() {}
func (Nop) IncRateLimited() {}
