package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/PetCalendar_Go/internal/domain"
)

// Kind names one of the JSON documents kept per user.
type Kind string

// Document kinds
const (
	KindPet       Kind = "pet"
	KindLedger    Kind = "pokedex"
	KindEvents    Kind = "events"
	KindGoals     Kind = "goals"
	KindLocations Kind = "locations"
)

// Kinds lists every document kind.
var Kinds = []Kind{KindPet, KindLedger, KindEvents, KindGoals, KindLocations}

// Documents is a raw backend holding one JSON document per (user, kind).
// Get returns domain.ErrDocumentNotFound when nothing was stored yet.
type Documents interface {
	Get(ctx context.Context, userID string, kind Kind) ([]byte, error)
	Put(ctx context.Context, userID string, kind Kind, body []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// DocumentStore implements repository.Store on top of a Documents backend.
// Absent documents decode to their defaults.
type DocumentStore struct {
	docs Documents
}

// NewDocumentStore wraps a raw backend.
func NewDocumentStore(docs Documents) *DocumentStore {
	return &DocumentStore{docs: docs}
}

func (s *DocumentStore) load(ctx context.Context, userID string, kind Kind, dst interface{}) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	body, err := s.docs.Get(ctx, userID, kind)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s document: %w", kind, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToDecodeDocument, kind, err)
	}
	return nil
}

func (s *DocumentStore) save(ctx context.Context, userID string, kind Kind, v interface{}) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToEncodeDocument, kind, err)
	}
	if err := s.docs.Put(ctx, userID, kind, body); err != nil {
		return fmt.Errorf("failed to write %s document: %w", kind, err)
	}
	return nil
}

// GetPet returns the stored pet or a never-started egg.
func (s *DocumentStore) GetPet(ctx context.Context, userID string) (*domain.Pet, error) {
	p := domain.NewPet()
	if err := s.load(ctx, userID, KindPet, p); err != nil {
		return nil, err
	}
	p.Inventory = p.Inventory.Clone()
	return p, nil
}

func (s *DocumentStore) SavePet(ctx context.Context, userID string, pet domain.Pet) error {
	return s.save(ctx, userID, KindPet, pet)
}

// GetLedger returns the stored discovery ledger or an empty one.
func (s *DocumentStore) GetLedger(ctx context.Context, userID string) (*domain.Ledger, error) {
	l := domain.NewLedger()
	if err := s.load(ctx, userID, KindLedger, l); err != nil {
		return nil, err
	}
	if l.Discovered == nil {
		l.Discovered = []string{}
	}
	if l.RaisingCounts == nil {
		l.RaisingCounts = map[string]int{}
	}
	return l, nil
}

func (s *DocumentStore) SaveLedger(ctx context.Context, userID string, ledger domain.Ledger) error {
	return s.save(ctx, userID, KindLedger, ledger)
}

// GetEvents returns every event of the user keyed by date.
func (s *DocumentStore) GetEvents(ctx context.Context, userID string) (domain.EventBook, error) {
	book := domain.EventBook{}
	if err := s.load(ctx, userID, KindEvents, &book); err != nil {
		return nil, err
	}
	if book == nil {
		book = domain.EventBook{}
	}
	return book, nil
}

func (s *DocumentStore) SaveEvents(ctx context.Context, userID string, book domain.EventBook) error {
	return s.save(ctx, userID, KindEvents, book)
}

// GetGoals returns the monthly goals keyed by YYYY-MM.
func (s *DocumentStore) GetGoals(ctx context.Context, userID string) (domain.Goals, error) {
	goals := domain.Goals{}
	if err := s.load(ctx, userID, KindGoals, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = domain.Goals{}
	}
	return goals, nil
}

func (s *DocumentStore) SaveGoals(ctx context.Context, userID string, goals domain.Goals) error {
	return s.save(ctx, userID, KindGoals, goals)
}

// GetLocations returns the location palette, falling back to the defaults.
func (s *DocumentStore) GetLocations(ctx context.Context, userID string) (domain.Locations, error) {
	var locations domain.Locations
	if err := s.load(ctx, userID, KindLocations, &locations); err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		locations = domain.DefaultLocations()
	}
	return locations, nil
}

func (s *DocumentStore) SaveLocations(ctx context.Context, userID string, locations domain.Locations) error {
	return s.save(ctx, userID, KindLocations, locations)
}

// Ping checks the backend.
func (s *DocumentStore) Ping(ctx context.Context) error {
	return s.docs.Ping(ctx)
}

// Close releases the backend.
func (s *DocumentStore) Close() error {
	return s.docs.Close()
}
