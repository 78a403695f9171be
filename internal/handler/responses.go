package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	// Encode before writing headers so a failure can still become a 500
	buf, err := encodeResponse(payload)
	if err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgServerError, http.StatusInternalServerError)
		return
	}
	defer releaseBuffer(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgServerError       = "Server error occurred. Please try again."
	ErrMsgUnauthenticated   = "Unauthenticated"
	ErrMsgInvalidSpecies    = "Unknown pet species"
	ErrMsgInvalidFood       = "Unknown food"
	ErrMsgInvalidQuantity   = "Quantity must be between 1 and 99"
	ErrMsgInvalidDate       = "Invalid date"
	ErrMsgInvalidTime       = "Invalid time"
	ErrMsgInvalidTimeRange  = "End time must be after start time"
	ErrMsgPastEvent         = "Cannot schedule an event in the past"
	ErrMsgNotEnoughCoins    = "Not enough coins"
	ErrMsgAlreadyStarted    = "Your pet is already being raised. Revive or reset instead."
	ErrMsgNotStarted        = "Start raising a pet first"
	ErrMsgDateNotFound      = "No events on that date"
	ErrMsgEventNotFound     = "Event not found"
	ErrMsgAlreadyResolved   = "That event already has an outcome"
	ErrMsgGoalNotFound      = "No goal set for that month"
	ErrMsgGoalAchieved      = "Goal already achieved"
	ErrMsgGoalTextRequired  = "Please enter a goal"
	ErrMsgInvalidInputError = "Invalid request. Please check your inputs."
)

var serviceErrors = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrUnauthenticated, http.StatusUnauthorized, ErrMsgUnauthenticated},
	{domain.ErrInvalidSpecies, http.StatusBadRequest, ErrMsgInvalidSpecies},
	{domain.ErrInvalidFood, http.StatusBadRequest, ErrMsgInvalidFood},
	{domain.ErrInvalidQuantity, http.StatusBadRequest, ErrMsgInvalidQuantity},
	{domain.ErrInvalidDate, http.StatusBadRequest, ErrMsgInvalidDate},
	{domain.ErrInvalidTime, http.StatusBadRequest, ErrMsgInvalidTime},
	{domain.ErrInvalidTimeRange, http.StatusBadRequest, ErrMsgInvalidTimeRange},
	{domain.ErrPastEvent, http.StatusBadRequest, ErrMsgPastEvent},
	{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughCoins},
	{domain.ErrPetAlreadyStarted, http.StatusBadRequest, ErrMsgAlreadyStarted},
	{domain.ErrPetNotStarted, http.StatusBadRequest, ErrMsgNotStarted},
	{domain.ErrAlreadyResolved, http.StatusBadRequest, ErrMsgAlreadyResolved},
	{domain.ErrGoalAchieved, http.StatusBadRequest, ErrMsgGoalAchieved},
	{domain.ErrGoalTextRequired, http.StatusBadRequest, ErrMsgGoalTextRequired},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
	{domain.ErrDateNotFound, http.StatusNotFound, ErrMsgDateNotFound},
	{domain.ErrEventNotFound, http.StatusNotFound, ErrMsgEventNotFound},
	{domain.ErrGoalNotFound, http.StatusNotFound, ErrMsgGoalNotFound},
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Anything unrecognised is a server error and its text is not exposed.
func mapServiceErrorToUserMessage(err error) (int, string) {
	for _, candidate := range serviceErrors {
		if errors.Is(err, candidate.err) {
			return candidate.status, candidate.message
		}
	}
	return http.StatusInternalServerError, ErrMsgServerError
}

// respondServiceError logs a failed service call and writes the mapped response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Info(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	}
	respondError(w, status, message)
}
