package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PetCalendar_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized, ErrMsgUnauthenticated},
		{"wrapped funds", fmt.Errorf("%w: need 5", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughCoins},
		{"double wrapped", fmt.Errorf("outer: %w", fmt.Errorf("%w: x", domain.ErrPastEvent)), http.StatusBadRequest, ErrMsgPastEvent},
		{"date not found", domain.ErrDateNotFound, http.StatusNotFound, ErrMsgDateNotFound},
		{"event not found", domain.ErrEventNotFound, http.StatusNotFound, ErrMsgEventNotFound},
		{"goal not found", domain.ErrGoalNotFound, http.StatusNotFound, ErrMsgGoalNotFound},
		{"goal achieved", domain.ErrGoalAchieved, http.StatusBadRequest, ErrMsgGoalAchieved},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgServerError},
		{"nil", nil, http.StatusInternalServerError, ErrMsgServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestEveryValidationErrorIsMapped(t *testing.T) {
	for _, err := range []error{
		domain.ErrInvalidInput, domain.ErrInvalidSpecies, domain.ErrInvalidFood, domain.ErrInvalidQuantity,
		domain.ErrInvalidDate, domain.ErrInvalidTime, domain.ErrInvalidTimeRange, domain.ErrPastEvent,
		domain.ErrInsufficientFunds, domain.ErrPetAlreadyStarted, domain.ErrPetNotStarted,
		domain.ErrAlreadyResolved, domain.ErrGoalAchieved, domain.ErrGoalTextRequired,
	} {
		assert.True(t, domain.IsValidation(err))
		status, _ := mapServiceErrorToUserMessage(err)
		assert.Equal(t, http.StatusBadRequest, status, err.Error())
	}
}
