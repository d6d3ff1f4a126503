package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transcription outcomes used as the "outcome" label value.
const (
	OutcomeSuccess       = "success"
	OutcomeInputError    = "input_error"
	OutcomeStorageError  = "storage_error"
	OutcomeProviderError = "provider_error"
)

// Metrics contains all Prometheus metrics for the transcription service
type Metrics struct {
	// Transcription metrics
	TranscriptionRequests *prometheus.CounterVec
	TranscriptionDuration prometheus.Histogram
	UploadSize            prometheus.Histogram
	RetainedUploads       prometheus.Counter

	// HTTP API metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates all metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TranscriptionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lotus_transcription_requests_total",
			Help: "Total number of transcription requests by outcome",
		}, []string{"outcome"}),
		TranscriptionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lotus_transcription_duration_seconds",
			Help:    "Duration of provider transcription calls",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3 minutes
		}),
		UploadSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "lotus_upload_size_bytes",
			Help:    "Size of uploaded audio files in bytes",
			Buckets: prometheus.ExponentialBuckets(16*1024, 4, 8), // 16KB to ~256MB
		}),
		RetainedUploads: factory.NewCounter(prometheus.CounterOpts{
			Name: "lotus_retained_uploads_total",
			Help: "Total number of failed uploads kept on disk for inspection",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lotus_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status_code"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lotus_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
	}
}

// RecordTranscription records the outcome of one transcription request
func (m *Metrics) RecordTranscription(outcome string) {
	m.TranscriptionRequests.WithLabelValues(outcome).Inc()
}

// ObserveProviderCall records how long the provider took
func (m *Metrics) ObserveProviderCall(durationSeconds float64) {
	m.TranscriptionDuration.Observe(durationSeconds)
}

// ObserveUpload records the size of a staged upload
func (m *Metrics) ObserveUpload(sizeBytes int64) {
	m.UploadSize.Observe(float64(sizeBytes))
}

// RecordRetainedUpload increments the retained uploads counter
func (m *Metrics) RecordRetainedUpload() {
	m.RetainedUploads.Inc()
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, durationSeconds float64) {
	m.HTTPRequests.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}
