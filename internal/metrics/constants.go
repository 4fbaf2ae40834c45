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
	MetricNameHarvestCalculations = "harvest_calculations_total"
	MetricNameHarvestOptimalDays  = "harvest_optimal_days"
	MetricNameHarvestConfidence   = "harvest_confidence"
	MetricNameCalendarEvents      = "calendar_events_created_total"
	MetricNameRemindersSent       = "calendar_reminders_sent_total"
	MetricNameMarketPricesStored  = "market_prices_recorded_total"
	MetricNameMarketPriceCache    = "market_price_cache_total"
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
	HelpTextHarvestCalculations = "Total number of harvest timing calculations"
	HelpTextHarvestOptimalDays  = "Distribution of recommended days to wait before harvest"
	HelpTextHarvestConfidence   = "Distribution of harvest recommendation confidence scores"
	HelpTextCalendarEvents      = "Total number of crop calendar events created"
	HelpTextRemindersSent       = "Total number of calendar reminders attempted"
	HelpTextMarketPricesStored  = "Total number of market prices recorded"
	HelpTextMarketPriceCache    = "Market price cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelCrop      = "crop"
	LabelEventType = "event_type"
	LabelResult    = "result"
)

// Label values
const (
	StatusSent   = "sent"
	StatusFailed = "failed"

	CacheHit  = "hit"
	CacheMiss = "miss"

	CropOther = "other"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// OptimalDaysBuckets covers the 0-30 day planning horizon
var OptimalDaysBuckets = []float64{0, 1, 3, 7, 14, 21, 30}

// ConfidenceBuckets covers the 0-100 confidence range
var ConfidenceBuckets = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
