package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Identity errors
	ErrMsgUnauthenticated = "no active user"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidSpecies   = "invalid species"
	ErrMsgInvalidFood      = "invalid food"
	ErrMsgInvalidQuantity  = "invalid quantity"
	ErrMsgInvalidDate      = "invalid date"
	ErrMsgInvalidTime      = "invalid time"
	ErrMsgInvalidTimeRange = "end time must be after start time"
	ErrMsgPastEvent        = "cannot schedule an event in the past"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Pet lifecycle errors
	ErrMsgPetAlreadyStarted = "pet already started"
	ErrMsgPetNotStarted     = "pet has not been started"

	// Calendar errors
	ErrMsgDateNotFound     = "no events on that date"
	ErrMsgEventNotFound    = "event not found"
	ErrMsgAlreadyResolved  = "event outcome already set"
	ErrMsgGoalNotFound     = "goal not set"
	ErrMsgGoalAchieved     = "goal already achieved"
	ErrMsgGoalTextRequired = "goal text is required"

	// Storage errors
	ErrMsgDocumentNotFound = "document not found"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)

	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidSpecies   = errors.New(ErrMsgInvalidSpecies)
	ErrInvalidFood      = errors.New(ErrMsgInvalidFood)
	ErrInvalidQuantity  = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidDate      = errors.New(ErrMsgInvalidDate)
	ErrInvalidTime      = errors.New(ErrMsgInvalidTime)
	ErrInvalidTimeRange = errors.New(ErrMsgInvalidTimeRange)
	ErrPastEvent        = errors.New(ErrMsgPastEvent)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrPetAlreadyStarted = errors.New(ErrMsgPetAlreadyStarted)
	ErrPetNotStarted     = errors.New(ErrMsgPetNotStarted)

	ErrDateNotFound     = errors.New(ErrMsgDateNotFound)
	ErrEventNotFound    = errors.New(ErrMsgEventNotFound)
	ErrAlreadyResolved  = errors.New(ErrMsgAlreadyResolved)
	ErrGoalNotFound     = errors.New(ErrMsgGoalNotFound)
	ErrGoalAchieved     = errors.New(ErrMsgGoalAchieved)
	ErrGoalTextRequired = errors.New(ErrMsgGoalTextRequired)

	ErrDocumentNotFound = errors.New(ErrMsgDocumentNotFound)
)

// IsValidation reports whether err is a rejected-input error that leaves state unchanged.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidInput, ErrInvalidSpecies, ErrInvalidFood, ErrInvalidQuantity,
		ErrInvalidDate, ErrInvalidTime, ErrInvalidTimeRange, ErrPastEvent,
		ErrInsufficientFunds, ErrPetAlreadyStarted, ErrPetNotStarted,
		ErrAlreadyResolved, ErrGoalAchieved, ErrGoalTextRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err refers to a missing event, date or goal.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDateNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrGoalNotFound)
}
