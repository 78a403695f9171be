package calendar

// lockPrefix namespaces per-user calendar locks. Calendar locks are always
// taken before pet locks.
const lockPrefix = "calendar:"

// WeekdayNames labels the columns of the month grid, Sunday first.
var WeekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Limits on free text
const (
	MaxEventTextLength = 200
	MaxGoalTextLength  = 200
)
