package bootstrap

import (
	"fmt"

	"github.com/osse101/PetCalendar_Go/internal/calendar"
	"github.com/osse101/PetCalendar_Go/internal/config"
	"github.com/osse101/PetCalendar_Go/internal/event"
	"github.com/osse101/PetCalendar_Go/internal/evolution"
	"github.com/osse101/PetCalendar_Go/internal/pet"
	"github.com/osse101/PetCalendar_Go/internal/repository"
	"github.com/osse101/PetCalendar_Go/internal/rewards"
)

// Services holds the application services handed to the HTTP layer.
type Services struct {
	Pet      pet.Service
	Calendar calendar.Service
}

// InitializeServices loads the reward tables and catalogue and wires the
// pet and calendar services over store.
func InitializeServices(cfg *config.Config, store repository.Store, bus event.Bus) (*Services, error) {
	tables, err := rewards.Load(cfg.RewardPreset, cfg.RewardsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRewards, err)
	}

	catalogue, err := pet.LoadCatalogue()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalogue, err)
	}

	petService := pet.NewService(store, tables, evolution.NewSelector(tables), catalogue, bus)
	calendarService := calendar.NewService(store, petService, tables.GoalReward, bus)

	return &Services{Pet: petService, Calendar: calendarService}, nil
}
