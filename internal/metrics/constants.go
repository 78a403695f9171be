package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameEventStreamsOpen     = "event_streams_open"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePetFeedings        = "pet_feedings_total"
	MetricNamePetLevelsGained    = "pet_levels_gained_total"
	MetricNamePetEvolutions      = "pet_evolutions_total"
	MetricNamePetDeaths          = "pet_deaths_total"
	MetricNameFoodBought         = "food_bought_total"
	MetricNameCoinsSpent         = "coins_spent_total"
	MetricNameCoinsAwarded       = "coins_awarded_total"
	MetricNameEventOutcomes      = "calendar_event_outcomes_total"
	MetricNameFormsDiscovered    = "pokedex_forms_discovered_total"
	MetricNameStoreCacheRequests = "store_cache_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextEventStreamsOpen     = "Number of open server-sent event streams"
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPetFeedings        = "Total number of successful feedings by food tier"
	HelpTextPetLevelsGained    = "Total number of levels gained through feeding"
	HelpTextPetEvolutions      = "Total number of terminal evolutions by species and variant"
	HelpTextPetDeaths          = "Total number of pet deaths by species"
	HelpTextFoodBought         = "Total units of food bought by tier"
	HelpTextCoinsSpent         = "Total coins spent in the shop"
	HelpTextCoinsAwarded       = "Total coins awarded by source"
	HelpTextEventOutcomes      = "Total number of resolved calendar events by result"
	HelpTextFormsDiscovered    = "Total number of newly discovered pokedex forms"
	HelpTextStoreCacheRequests = "Total number of document cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelFood    = "food"
	LabelSpecies = "species"
	LabelVariant = "variant"
	LabelSource  = "source"
	LabelResult  = "result"
	LabelKind    = "kind"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultHit     = "hit"
	ResultMiss    = "miss"

	// PathUnmatched is used when no route pattern was resolved
	PathUnmatched = "unmatched"

	// ContentTypeEventStream marks long-lived requests kept out of the latency histogram
	ContentTypeEventStream = "text/event-stream"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
