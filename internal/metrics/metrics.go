package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	PredictionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsGenerated,
			Help: HelpTextPredictionsGenerated,
		},
		[]string{LabelModel},
	)

	PredictionsSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsSettled,
			Help: HelpTextPredictionsSettled,
		},
		[]string{LabelResult},
	)

	MatchesImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMatchesImported,
			Help: HelpTextMatchesImported,
		},
	)

	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMessagesSent,
			Help: HelpTextMessagesSent,
		},
	)

	BookingCodesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBookingCodesCreated,
			Help: HelpTextBookingCodesCreated,
		},
	)

	PresenceRowsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePresenceRowsDeleted,
			Help: HelpTextPresenceRowsDeleted,
		},
	)

	SSEClientsConnected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClientsConnected,
			Help: HelpTextSSEClientsConnected,
		},
	)
)

// RecordPredictionsGenerated counts a generated batch by model
func RecordPredictionsGenerated(model string, count int) {
	PredictionsGenerated.WithLabelValues(model).Add(float64(count))
}

// RecordSettlement counts one settled prediction by outcome
func RecordSettlement(result string) {
	PredictionsSettled.WithLabelValues(result).Inc()
}
