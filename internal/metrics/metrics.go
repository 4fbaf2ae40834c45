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

// Harvest Metrics
var (
	HarvestCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHarvestCalculations,
			Help: HelpTextHarvestCalculations,
		},
		[]string{LabelCrop},
	)

	HarvestOptimalDays = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHarvestOptimalDays,
			Help:    HelpTextHarvestOptimalDays,
			Buckets: OptimalDaysBuckets,
		},
	)

	HarvestConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHarvestConfidence,
			Help:    HelpTextHarvestConfidence,
			Buckets: ConfidenceBuckets,
		},
	)
)

// Calendar Metrics
var (
	CalendarEventsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalendarEvents,
			Help: HelpTextCalendarEvents,
		},
		[]string{LabelEventType},
	)

	RemindersSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRemindersSent,
			Help: HelpTextRemindersSent,
		},
		[]string{LabelStatus},
	)
)

// Market Metrics
var (
	MarketPricesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMarketPricesStored,
			Help: HelpTextMarketPricesStored,
		},
		[]string{LabelCrop},
	)

	MarketPriceCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMarketPriceCache,
			Help: HelpTextMarketPriceCache,
		},
		[]string{LabelResult},
	)
)
