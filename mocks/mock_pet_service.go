// Package mocks holds testify mocks of the service interfaces used by handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/pet"
)

// MockPetService is a mock implementation of pet.Service
type MockPetService struct {
	mock.Mock
}

var _ pet.Service = (*MockPetService)(nil)

func (m *MockPetService) GetPet(ctx context.Context, username string) (*pet.View, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.View), args.Error(1)
}

func (m *MockPetService) Start(ctx context.Context, username string, species domain.SpeciesID) (*pet.View, error) {
	args := m.Called(ctx, username, species)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.View), args.Error(1)
}

func (m *MockPetService) Revive(ctx context.Context, username string, species domain.SpeciesID) (*pet.View, error) {
	args := m.Called(ctx, username, species)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.View), args.Error(1)
}

func (m *MockPetService) Reset(ctx context.Context, username string) (*pet.View, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.View), args.Error(1)
}

func (m *MockPetService) Feed(ctx context.Context, username string, food domain.FoodTier) (*pet.FeedResult, error) {
	args := m.Called(ctx, username, food)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.FeedResult), args.Error(1)
}

func (m *MockPetService) BuyFood(ctx context.Context, username string, food domain.FoodTier, quantity int) (*pet.PurchaseResult, error) {
	args := m.Called(ctx, username, food, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.PurchaseResult), args.Error(1)
}

func (m *MockPetService) Shop(ctx context.Context, username string) (*pet.ShopView, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.ShopView), args.Error(1)
}

func (m *MockPetService) ResolveEventOutcome(ctx context.Context, username string, durationMinutes int, success bool) (*pet.OutcomeResult, error) {
	args := m.Called(ctx, username, durationMinutes, success)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.OutcomeResult), args.Error(1)
}

func (m *MockPetService) AwardCoins(ctx context.Context, username string, amount int, source string) (*pet.View, error) {
	args := m.Called(ctx, username, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.View), args.Error(1)
}

func (m *MockPetService) Pokedex(ctx context.Context, username string) (*pet.PokedexView, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pet.PokedexView), args.Error(1)
}

func (m *MockPetService) Species() []pet.SpeciesInfo {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]pet.SpeciesInfo)
}
