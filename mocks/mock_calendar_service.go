package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PetCalendar_Go/internal/calendar"
	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/pet"
)

// MockCalendarService is a mock implementation of calendar.Service
type MockCalendarService struct {
	mock.Mock
}

var _ calendar.Service = (*MockCalendarService)(nil)

func (m *MockCalendarService) AddEvent(ctx context.Context, username string, in calendar.EventInput) (*domain.Event, error) {
	args := m.Called(ctx, username, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockCalendarService) UpdateEvent(ctx context.Context, username string, id int, in calendar.EventInput) (*domain.Event, error) {
	args := m.Called(ctx, username, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockCalendarService) DeleteEvent(ctx context.Context, username, date string, id int) error {
	args := m.Called(ctx, username, date, id)
	return args.Error(0)
}

func (m *MockCalendarService) ListMonth(ctx context.Context, username string, year, month int) (*calendar.MonthView, error) {
	args := m.Called(ctx, username, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.MonthView), args.Error(1)
}

func (m *MockCalendarService) SetDone(ctx context.Context, username, date string, id int, done bool) (*pet.OutcomeResult, error) {
	args := m.Called(ctx, username, date, id, done)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.OutcomeResult), args.Error(1)
}

func (m *MockCalendarService) SetGoal(ctx context.Context, username, monthKey, text string) (*domain.Goal, error) {
	args := m.Called(ctx, username, monthKey, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockCalendarService) AchieveGoal(ctx context.Context, username, monthKey string) (*calendar.GoalResult, error) {
	args := m.Called(ctx, username, monthKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.GoalResult), args.Error(1)
}

func (m *MockCalendarService) GetLocations(ctx context.Context, username string) (domain.Locations, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Locations), args.Error(1)
}

func (m *MockCalendarService) SaveLocations(ctx context.Context, username string, locations domain.Locations) (domain.Locations, error) {
	args := m.Called(ctx, username, locations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Locations), args.Error(1)
}
