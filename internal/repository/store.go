package repository

import (
	"context"

	"github.com/osse101/PetCalendar_Go/internal/domain"
)

// Pet defines persistence for the pet record and the discovery ledger.
// Missing records come back as defaults, never as errors.
type Pet interface {
	GetPet(ctx context.Context, userID string) (*domain.Pet, error)
	SavePet(ctx context.Context, userID string, pet domain.Pet) error
	GetLedger(ctx context.Context, userID string) (*domain.Ledger, error)
	SaveLedger(ctx context.Context, userID string, ledger domain.Ledger) error
}

// Calendar defines persistence for events, monthly goals and locations.
type Calendar interface {
	GetEvents(ctx context.Context, userID string) (domain.EventBook, error)
	SaveEvents(ctx context.Context, userID string, book domain.EventBook) error
	GetGoals(ctx context.Context, userID string) (domain.Goals, error)
	SaveGoals(ctx context.Context, userID string, goals domain.Goals) error
	GetLocations(ctx context.Context, userID string) (domain.Locations, error)
	SaveLocations(ctx context.Context, userID string, locations domain.Locations) error
}

// Store is the full per-user persistence contract.
type Store interface {
	Pet
	Calendar
	Ping(ctx context.Context) error
}
