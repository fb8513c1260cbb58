package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePredictionsGenerated = "predictions_generated_total"
	MetricNamePredictionsSettled   = "predictions_settled_total"
	MetricNameMatchesImported      = "matches_imported_total"
	MetricNameMessagesSent         = "chat_messages_sent_total"
	MetricNameBookingCodesCreated  = "booking_codes_created_total"
	MetricNamePresenceRowsDeleted  = "presence_rows_deleted_total"
	MetricNameSSEClientsConnected  = "sse_clients_connected"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPredictionsGenerated = "Total number of predictions generated"
	HelpTextPredictionsSettled   = "Total number of predictions settled"
	HelpTextMatchesImported      = "Total number of matches imported from the fixtures feed"
	HelpTextMessagesSent         = "Total number of chat messages sent"
	HelpTextBookingCodesCreated  = "Total number of booking codes created"
	HelpTextPresenceRowsDeleted  = "Total number of stale presence rows deleted"
	HelpTextSSEClientsConnected  = "Current number of connected SSE clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelModel  = "model"
	LabelResult = "result"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
