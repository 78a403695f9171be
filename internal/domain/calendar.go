package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Calendar formats
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	MonthKeyLayout = "2006-01"
)

// Event is a scheduled task on a user's calendar.
type Event struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Text      string `json:"text"`
	Location  string `json:"location"`
	Done      *bool  `json:"done"` // nil until the outcome is set, then immutable
}

// Resolved reports whether the event outcome has been recorded.
func (e Event) Resolved() bool {
	return e.Done != nil
}

// DurationMinutes returns end minus start in minutes.
func (e Event) DurationMinutes() (int, error) {
	start, err := ClockMinutes(e.StartTime)
	if err != nil {
		return 0, err
	}
	end, err := ClockMinutes(e.EndTime)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// ClockMinutes parses "HH:MM" into minutes since midnight.
func ClockMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	return hours*60 + minutes, nil
}

// EventBook holds a user's events keyed by date (YYYY-MM-DD).
type EventBook map[string][]Event

// Find returns the index of the event with the given id on date, or -1.
func (b EventBook) Find(date string, id int) int {
	for i, ev := range b[date] {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

// NextID returns the id for a new event on date.
func (b EventBook) NextID(date string) int {
	maxID := 0
	for _, ev := range b[date] {
		if ev.ID > maxID {
			maxID = ev.ID
		}
	}
	return maxID + 1
}

// Goal is a monthly objective.
type Goal struct {
	Text     string `json:"goal"`
	Achieved bool   `json:"achieved"`
}

// Goals holds a user's goals keyed by month (YYYY-MM).
type Goals map[string]Goal

// Locations maps a location tag to its display colour.
type Locations map[string]string

// Location tags
const (
	LocationHome     = "home"
	LocationOutdoors = "outdoors"
	LocationIndoors  = "indoors"
	LocationOnline   = "online"
	LocationOther    = "other"
)

// DefaultLocations returns the starting location palette.
func DefaultLocations() Locations {
	return Locations{
		LocationHome:     "#ef4444",
		LocationOutdoors: "#10b981",
		LocationIndoors:  "#f59e0b",
		LocationOnline:   "#8b5cf6",
		LocationOther:    "#64748b",
	}
}
