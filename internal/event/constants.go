package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Log message constants
const (
	LogMsgPublishFailed = "Event publish failed"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// Sources for coin awards
const (
	SourceEventOutcome = "event"
	SourceGoal         = "goal"
)
