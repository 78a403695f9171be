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

	EventStreamsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameEventStreamsOpen,
			Help: HelpTextEventStreamsOpen,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PetFeedings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetFeedings,
			Help: HelpTextPetFeedings,
		},
		[]string{LabelFood},
	)

	PetLevelsGained = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePetLevelsGained,
			Help: HelpTextPetLevelsGained,
		},
	)

	PetEvolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetEvolutions,
			Help: HelpTextPetEvolutions,
		},
		[]string{LabelSpecies, LabelVariant},
	)

	PetDeaths = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetDeaths,
			Help: HelpTextPetDeaths,
		},
		[]string{LabelSpecies},
	)

	FoodBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFoodBought,
			Help: HelpTextFoodBought,
		},
		[]string{LabelFood},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	CoinsAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsAwarded,
			Help: HelpTextCoinsAwarded,
		},
		[]string{LabelSource},
	)

	EventOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventOutcomes,
			Help: HelpTextEventOutcomes,
		},
		[]string{LabelResult},
	)

	FormsDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFormsDiscovered,
			Help: HelpTextFormsDiscovered,
		},
	)

	StoreCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreCacheRequests,
			Help: HelpTextStoreCacheRequests,
		},
		[]string{LabelKind, LabelResult},
	)
)
