package pet

import (
	"context"
	"fmt"

	"github.com/osse101/PetCalendar_Go/internal/concurrency"
	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/event"
	"github.com/osse101/PetCalendar_Go/internal/logger"
	"github.com/osse101/PetCalendar_Go/internal/petimage"
	"github.com/osse101/PetCalendar_Go/internal/repository"
	"github.com/osse101/PetCalendar_Go/internal/rewards"
)

// Service defines pet lifecycle, feeding, shop and pokedex operations.
type Service interface {
	GetPet(ctx context.Context, username string) (*View, error)
	Start(ctx context.Context, username string, species domain.SpeciesID) (*View, error)
	Revive(ctx context.Context, username string, species domain.SpeciesID) (*View, error)
	Reset(ctx context.Context, username string) (*View, error)
	Feed(ctx context.Context, username string, food domain.FoodTier) (*FeedResult, error)
	BuyFood(ctx context.Context, username string, food domain.FoodTier, quantity int) (*PurchaseResult, error)
	Shop(ctx context.Context, username string) (*ShopView, error)
	ResolveEventOutcome(ctx context.Context, username string, durationMinutes int, success bool) (*OutcomeResult, error)
	AwardCoins(ctx context.Context, username string, amount int, source string) (*View, error)
	Pokedex(ctx context.Context, username string) (*PokedexView, error)
	Species() []SpeciesInfo
}

// Evolver draws evolution variants and rates terminal forms.
type Evolver interface {
	VariantSelector
	RarityStars(imageKey string) (int, bool)
}

// View is the pet state as shown to the player.
type View struct {
	domain.Pet
	ImageKey        string `json:"image"`
	FormName        string `json:"form_name"`
	NextRequiredExp int    `json:"next_exp"`
	SpeciesName     string `json:"species_name,omitempty"`
	Rarity          int    `json:"rarity,omitempty"`
}

// PurchaseResult describes a completed food purchase.
type PurchaseResult struct {
	Food      domain.FoodTier  `json:"food"`
	Quantity  int              `json:"quantity"`
	Cost      int              `json:"cost"`
	Coins     int              `json:"coins"`
	Inventory domain.Inventory `json:"inventory"`
	Message   string           `json:"message"`
}

// ShopItem is one purchasable food tier.
type ShopItem struct {
	Food       domain.FoodTier `json:"food"`
	Price      int             `json:"price"`
	Experience int             `json:"exp"`
}

// ShopView lists the shop together with the player's wallet.
type ShopView struct {
	Coins     int              `json:"coins"`
	Inventory domain.Inventory `json:"inventory"`
	Items     []ShopItem       `json:"items"`
	ExpTable  []int            `json:"exp_table"`
}

// PokedexEntry is one catalogued form.
type PokedexEntry struct {
	ImageKey     string           `json:"image"`
	Name         string           `json:"name"`
	Species      domain.SpeciesID `json:"species_id"`
	Discovered   bool             `json:"discovered"`
	RaisingCount int              `json:"raising_count"`
	Rarity       int              `json:"rarity,omitempty"`
}

// PokedexView is the player's full catalogue.
type PokedexView struct {
	Species    []SpeciesInfo  `json:"species"`
	Entries    []PokedexEntry `json:"entries"`
	Discovered int            `json:"discovered"`
	Total      int            `json:"total"`
}

type service struct {
	repo      repository.Pet
	resolver  *Resolver
	evolver   Evolver
	catalogue *Catalogue
	bus       event.Bus
	locks     *concurrency.LockManager
}

// NewService creates a new pet service. bus may be nil.
func NewService(repo repository.Pet, tables *rewards.Tables, evolver Evolver, catalogue *Catalogue, bus event.Bus) Service {
	return &service{
		repo:      repo,
		resolver:  NewResolver(tables, evolver),
		evolver:   evolver,
		catalogue: catalogue,
		bus:       bus,
		locks:     concurrency.NewLockManager(),
	}
}

// update loads the pet under the user's lock, applies fn and saves the pet
// when fn asks for it.
func (s *service) update(ctx context.Context, username string, fn func(p *domain.Pet) (bool, error)) (*domain.Pet, error) {
	var out *domain.Pet
	err := s.locks.WithLock(lockPrefix+username, func() error {
		p, err := s.repo.GetPet(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to load pet: %w", err)
		}
		save, err := fn(p)
		if err != nil {
			return err
		}
		if save {
			if err := s.repo.SavePet(ctx, username, *p); err != nil {
				return fmt.Errorf("failed to save pet: %w", err)
			}
		}
		out = p
		return nil
	})
	return out, err
}

// registerDiscovery records a displayed form in the ledger. raised marks the
// form as the terminus of a level-up and bumps its raising count.
func (s *service) registerDiscovery(ctx context.Context, username, imageKey string, raised bool) error {
	if petimage.IsEgg(imageKey) {
		return nil
	}
	return s.locks.WithLock(ledgerLockPrefix+username, func() error {
		ledger, err := s.repo.GetLedger(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to load ledger: %w", err)
		}
		discovered := ledger.Discover(imageKey)
		if raised {
			ledger.IncrementRaising(imageKey)
		}
		if !discovered && !raised {
			return nil
		}
		if err := s.repo.SaveLedger(ctx, username, *ledger); err != nil {
			return fmt.Errorf("failed to save ledger: %w", err)
		}
		if discovered {
			event.PublishBestEffort(ctx, s.bus, event.NewFormDiscoveredEvent(username, imageKey))
		}
		return nil
	})
}

func (s *service) view(p *domain.Pet) *View {
	key := petimage.Form(p)
	v := &View{
		Pet:             *p.Clone(),
		ImageKey:        key,
		FormName:        s.catalogue.FormName(key),
		NextRequiredExp: s.resolver.Tables().NextRequired(p.Level, p.Species),
	}
	if info, ok := s.catalogue.SpeciesInfo(p.Species); ok {
		v.SpeciesName = info.Name
	}
	if stars, ok := s.evolver.RarityStars(key); ok {
		v.Rarity = stars
	}
	return v
}

// render builds the view and registers the displayed form.
func (s *service) render(ctx context.Context, username string, p *domain.Pet) (*View, error) {
	v := s.view(p)
	if err := s.registerDiscovery(ctx, username, v.ImageKey, false); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetPet(ctx context.Context, username string) (*View, error) {
	p, err := s.repo.GetPet(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load pet: %w", err)
	}
	return s.render(ctx, username, p)
}

func (s *service) Start(ctx context.Context, username string, species domain.SpeciesID) (*View, error) {
	log := logger.FromContext(ctx)
	log.Info("Start called", "username", username, "species", species)

	if !species.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSpecies, species)
	}

	p, err := s.update(ctx, username, func(p *domain.Pet) (bool, error) {
		// An egg woken by a finished event has no species yet and may still pick one.
		if p.Started && p.Species.Valid() {
			return false, fmt.Errorf("%w: revive or reset instead", domain.ErrPetAlreadyStarted)
		}
		hatch(p, species)
		p.Message = MsgStarted
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	event.PublishBestEffort(ctx, s.bus, event.NewPetLifecycleEvent(event.PetStarted, username))
	return s.render(ctx, username, p)
}

func (s *service) Revive(ctx context.Context, username string, species domain.SpeciesID) (*View, error) {
	log := logger.FromContext(ctx)
	log.Info("Revive called", "username", username, "species", species)

	if !species.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidSpecies, species)
	}

	p, err := s.update(ctx, username, func(p *domain.Pet) (bool, error) {
		if !p.Started {
			return false, domain.ErrPetNotStarted
		}
		hatch(p, species)
		p.Message = fmt.Sprintf(MsgRevivedFormat, p.Inventory.Total())
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	event.PublishBestEffort(ctx, s.bus, event.NewPetLifecycleEvent(event.PetRevived, username))
	return s.render(ctx, username, p)
}

// hatch puts the pet back into the growing-egg state. Coins and inventory are kept.
func hatch(p *domain.Pet, species domain.SpeciesID) {
	p.Alive = true
	p.Started = true
	p.Level = 0
	p.Experience = 0
	p.Evolution = 0
	p.Species = species
}

func (s *service) Reset(ctx context.Context, username string) (*View, error) {
	log := logger.FromContext(ctx)
	log.Info("Reset called", "username", username)

	p, err := s.update(ctx, username, func(p *domain.Pet) (bool, error) {
		p.Alive = false
		p.Started = false
		p.Level = 0
		p.Experience = 0
		p.Evolution = 0
		p.Species = domain.SpeciesNone
		p.Message = MsgReset
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	event.PublishBestEffort(ctx, s.bus, event.NewPetLifecycleEvent(event.PetReset, username))
	return s.render(ctx, username, p)
}

func (s *service) Feed(ctx context.Context, username string, food domain.FoodTier) (*FeedResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("Feed called", "username", username, "food", food)

	if !food.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFood, food)
	}

	var result *FeedResult
	p, err := s.update(ctx, username, func(p *domain.Pet) (bool, error) {
		var err error
		result, err = s.resolver.Feed(p, food)
		if err != nil {
			return false, err
		}
		return !result.Rejected, nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Rejected {
		event.PublishBestEffort(ctx, s.bus, event.NewPetFedEvent(username, food, result.StartLevel, result.Level, result.LevelsGained))
		if result.LevelsGained > 0 && p.AtMaxLevel() {
			log.Info("Pet evolved", "username", username, "species", p.Species, "variant", p.Evolution)
			event.PublishBestEffort(ctx, s.bus, event.NewPetEvolvedEvent(username, p.Species, p.Evolution))
		}
	}

	// The pet is already saved; a ledger failure only loses the discovery.
	if err := s.registerDiscovery(ctx, username, result.ImageKey, result.LevelsGained > 0); err != nil {
		log.Warn(LogMsgLedgerWriteFailed, "username", username, "image", result.ImageKey, "error", err)
	}
	return result, nil
}

func (s *service) BuyFood(ctx context.Context, username string, food domain.FoodTier, quantity int) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info("BuyFood called", "username", username, "food", food, "quantity", quantity)

	price, ok := s.resolver.Tables().Price(food)
	if !ok || !food.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFood, food)
	}
	if quantity < MinBuyQuantity || quantity > MaxBuyQuantity {
		return nil, fmt.Errorf("%w: must be between %d and %d", domain.ErrInvalidQuantity, MinBuyQuantity, MaxBuyQuantity)
	}
	cost := price * quantity

	p, err := s.update(ctx, username, func(p *domain.Pet) (bool, error) {
		if p.Coins < cost {
			return false, fmt.Errorf("%w: need %d coins, have %d", domain.ErrInsufficientFunds, cost, p.Coins)
		}
		p.Coins -= cost
		p.Inventory[food] += quantity
		p.Message = fmt.Sprintf(MsgBoughtFormat, quantity, food)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	event.PublishBestEffort(ctx, s.bus, event.NewFoodBoughtEvent(username, food, quantity, cost))
	return &PurchaseResult{
		Food:      food,
		Quantity:  quantity,
		Cost:      cost,
		Coins:     p.Coins,
		Inventory: p.Inventory.Clone(),
		Message:   p.Message,
	}, nil
}

func (s *service) Shop(ctx context.Context, username string) (*ShopView, error) {
	p, err := s.repo.GetPet(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load pet: %w", err)
	}

	tables := s.resolver.Tables()
	items := make([]ShopItem, 0, len(domain.FoodTiers))
	for _, food := range domain.FoodTiers {
		price, _ := tables.Price(food)
		exp, _ := tables.Experience(food)
		items = append(items, ShopItem{Food: food, Price: price, Experience: exp})
	}

	return &ShopView{
		Coins:     p.Coins,
		Inventory: p.Inventory.Clone(),
		Items:     items,
		ExpTable:  append([]int(nil), tables.ExpToNextLevel...),
	}, nil
}

func (s *service) ResolveEventOutcome(ctx context.Context, username string, durationMinutes int, success bool) (*OutcomeResult, error) {
	log := logger.FromContext(ctx)
	log.Info("ResolveEventOutcome called", "username", username, "duration", durationMinutes, "success", success)

	var (
		result    *OutcomeResult
		lastLevel int
	)
	p, err := s.update(ctx, username, func(p *domain.Pet) (bool, error) {
		lastLevel = p.Level
		var err error
		result, err = s.resolver.ResolveOutcome(p, durationMinutes, success)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}

	event.PublishBestEffort(ctx, s.bus, event.NewOutcomeResolvedEvent(
		username, success, durationMinutes, result.CoinsAwarded, result.LevelsLost, result.Died))
	if result.CoinsAwarded > 0 {
		event.PublishBestEffort(ctx, s.bus, event.NewCoinsAwardedEvent(username, result.CoinsAwarded, event.SourceEventOutcome))
	}
	if result.Died {
		log.Info("Pet died", "username", username, "species", p.Species, "last_level", lastLevel)
		event.PublishBestEffort(ctx, s.bus, event.NewPetDiedEvent(username, p.Species, lastLevel))
	}

	if err := s.registerDiscovery(ctx, username, result.ImageKey, false); err != nil {
		log.Warn(LogMsgLedgerWriteFailed, "username", username, "image", result.ImageKey, "error", err)
	}
	return result, nil
}

func (s *service) AwardCoins(ctx context.Context, username string, amount int, source string) (*View, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	p, err := s.update(ctx, username, func(p *domain.Pet) (bool, error) {
		p.Coins += amount
		format := MsgCoinsFormat
		if source == event.SourceGoal {
			format = MsgGoalFormat
		}
		p.Message = fmt.Sprintf(format, amount, p.Coins)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	event.PublishBestEffort(ctx, s.bus, event.NewCoinsAwardedEvent(username, amount, source))
	return s.render(ctx, username, p)
}

func (s *service) Pokedex(ctx context.Context, username string) (*PokedexView, error) {
	ledger, err := s.repo.GetLedger(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	view := &PokedexView{Species: s.Species()}
	for _, species := range domain.AllSpecies {
		for _, key := range Forms(species) {
			entry := PokedexEntry{
				ImageKey:     key,
				Name:         s.catalogue.FormName(key),
				Species:      species,
				Discovered:   ledger.HasDiscovered(key),
				RaisingCount: ledger.RaisingCount(key),
			}
			if stars, ok := s.evolver.RarityStars(key); ok {
				entry.Rarity = stars
			}
			if entry.Discovered {
				view.Discovered++
			}
			view.Entries = append(view.Entries, entry)
		}
	}
	view.Total = len(view.Entries)
	return view, nil
}

func (s *service) Species() []SpeciesInfo {
	return append([]SpeciesInfo(nil), s.catalogue.Species...)
}
