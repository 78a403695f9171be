package calendar

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/osse101/PetCalendar_Go/internal/concurrency"
	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/event"
	"github.com/osse101/PetCalendar_Go/internal/logger"
	"github.com/osse101/PetCalendar_Go/internal/pet"
	"github.com/osse101/PetCalendar_Go/internal/repository"
)

// Service defines calendar, goal and location operations.
type Service interface {
	AddEvent(ctx context.Context, username string, in EventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, username string, id int, in EventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, username, date string, id int) error
	ListMonth(ctx context.Context, username string, year, month int) (*MonthView, error)
	SetDone(ctx context.Context, username, date string, id int, done bool) (*pet.OutcomeResult, error)
	SetGoal(ctx context.Context, username, monthKey, text string) (*domain.Goal, error)
	AchieveGoal(ctx context.Context, username, monthKey string) (*GoalResult, error)
	GetLocations(ctx context.Context, username string) (domain.Locations, error)
	SaveLocations(ctx context.Context, username string, locations domain.Locations) (domain.Locations, error)
}

// PetRewarder is the part of the pet service the calendar drives.
type PetRewarder interface {
	ResolveEventOutcome(ctx context.Context, username string, durationMinutes int, success bool) (*pet.OutcomeResult, error)
	AwardCoins(ctx context.Context, username string, amount int, source string) (*pet.View, error)
}

// EventInput carries the editable fields of an event.
type EventInput struct {
	Date      string
	StartTime string
	EndTime   string
	Text      string
	Location  string
}

// MonthRef identifies a calendar month.
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthView is everything needed to draw one month.
type MonthView struct {
	Year        int                       `json:"year"`
	Month       int                       `json:"month"`
	MonthKey    string                    `json:"month_key"`
	Weeks       [][]int                   `json:"weeks"`
	Weekdays    []string                  `json:"weekdays"`
	Events      map[string][]domain.Event `json:"events"`
	Today       string                    `json:"today"`
	TodayEvents []domain.Event            `json:"today_events"`
	Now         string                    `json:"now"`
	Goal        domain.Goal               `json:"goal"`
	Locations   domain.Locations          `json:"locations"`
	Prev        MonthRef                  `json:"prev"`
	Next        MonthRef                  `json:"next"`
}

// GoalResult reports a goal completion and the coins it paid.
type GoalResult struct {
	MonthKey string `json:"month_key"`
	Reward   int    `json:"reward"`
	Coins    int    `json:"coins"`
	Message  string `json:"message"`
}

type service struct {
	store      repository.Calendar
	pets       PetRewarder
	goalReward int
	bus        event.Bus
	locks      *concurrency.LockManager
	now        func() time.Time // injectable for testing
}

// NewService creates a new calendar service. bus may be nil.
func NewService(store repository.Calendar, pets PetRewarder, goalReward int, bus event.Bus) Service {
	return NewServiceWithClock(store, pets, goalReward, bus, time.Now)
}

// NewServiceWithClock creates a calendar service with a custom clock.
func NewServiceWithClock(store repository.Calendar, pets PetRewarder, goalReward int, bus event.Bus, now func() time.Time) Service {
	return &service{
		store:      store,
		pets:       pets,
		goalReward: goalReward,
		bus:        bus,
		locks:      concurrency.NewLockManager(),
		now:        now,
	}
}

// validateTimes checks the clock format and ordering and returns both in minutes.
func validateTimes(start, end string) (int, int, error) {
	startMin, err := domain.ClockMinutes(start)
	if err != nil {
		return 0, 0, err
	}
	endMin, err := domain.ClockMinutes(end)
	if err != nil {
		return 0, 0, err
	}
	if startMin >= endMin {
		return 0, 0, fmt.Errorf("%w: %s-%s", domain.ErrInvalidTimeRange, start, end)
	}
	return startMin, endMin, nil
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) > MaxEventTextLength {
		return "", fmt.Errorf("%w: event text longer than %d characters", domain.ErrInvalidInput, MaxEventTextLength)
	}
	return text, nil
}

func sortByStart(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime < events[j].StartTime
	})
}

func (s *service) AddEvent(ctx context.Context, username string, in EventInput) (*domain.Event, error) {
	log := logger.FromContext(ctx)
	log.Info("AddEvent called", "username", username, "date", in.Date)

	day, err := time.Parse(domain.DateLayout, in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, in.Date)
	}
	_, endMin, err := validateTimes(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	text, err := validateText(in.Text)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(domain.DateLayout)
	date := day.Format(domain.DateLayout)
	if date < today {
		return nil, fmt.Errorf("%w: %s is before today", domain.ErrPastEvent, date)
	}
	if date == today && endMin < now.Hour()*60+now.Minute() {
		return nil, fmt.Errorf("%w: %s already ended today", domain.ErrPastEvent, in.EndTime)
	}

	location := in.Location
	if location == "" {
		location = domain.LocationOther
	}

	var created domain.Event
	err = s.locks.WithLock(lockPrefix+username, func() error {
		book, err := s.store.GetEvents(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		created = domain.Event{
			ID:        book.NextID(date),
			Date:      date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Text:      text,
			Location:  location,
		}
		book[date] = append(book[date], created)
		sortByStart(book[date])
		if err := s.store.SaveEvents(ctx, username, book); err != nil {
			return fmt.Errorf("failed to save events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *service) UpdateEvent(ctx context.Context, username string, id int, in EventInput) (*domain.Event, error) {
	log := logger.FromContext(ctx)
	log.Info("UpdateEvent called", "username", username, "date", in.Date, "id", id)

	if _, _, err := validateTimes(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}
	text, err := validateText(in.Text)
	if err != nil {
		return nil, err
	}
	location := in.Location
	if location == "" {
		location = domain.LocationOther
	}

	var updated domain.Event
	err = s.locks.WithLock(lockPrefix+username, func() error {
		book, err := s.store.GetEvents(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		if _, ok := book[in.Date]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrDateNotFound, in.Date)
		}
		idx := book.Find(in.Date, id)
		if idx < 0 {
			return fmt.Errorf("%w: %s #%d", domain.ErrEventNotFound, in.Date, id)
		}
		ev := &book[in.Date][idx]
		ev.StartTime = in.StartTime
		ev.EndTime = in.EndTime
		ev.Text = text
		ev.Location = location
		updated = *ev
		sortByStart(book[in.Date])
		if err := s.store.SaveEvents(ctx, username, book); err != nil {
			return fmt.Errorf("failed to save events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *service) DeleteEvent(ctx context.Context, username, date string, id int) error {
	log := logger.FromContext(ctx)
	log.Info("DeleteEvent called", "username", username, "date", date, "id", id)

	return s.locks.WithLock(lockPrefix+username, func() error {
		book, err := s.store.GetEvents(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		if _, ok := book[date]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrDateNotFound, date)
		}
		idx := book.Find(date, id)
		if idx < 0 {
			return fmt.Errorf("%w: %s #%d", domain.ErrEventNotFound, date, id)
		}
		book[date] = append(book[date][:idx], book[date][idx+1:]...)
		if len(book[date]) == 0 {
			delete(book, date)
		}
		if err := s.store.SaveEvents(ctx, username, book); err != nil {
			return fmt.Errorf("failed to save events: %w", err)
		}
		return nil
	})
}

func (s *service) ListMonth(ctx context.Context, username string, year, month int) (*MonthView, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, fmt.Errorf("%w: %04d-%02d", domain.ErrInvalidDate, year, month)
	}

	book, err := s.store.GetEvents(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	goals, err := s.store.GetGoals(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	locations, err := s.store.GetLocations(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	m := time.Month(month)
	monthKey := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Format(domain.MonthKeyLayout)
	now := s.now()
	today := now.Format(domain.DateLayout)

	events := make(map[string][]domain.Event)
	for date, list := range book {
		if strings.HasPrefix(date, monthKey+"-") && len(list) > 0 {
			events[date] = list
		}
	}
	todayEvents := append([]domain.Event{}, book[today]...)
	sortByStart(todayEvents)

	goal, ok := goals[monthKey]
	if !ok {
		goal = domain.Goal{}
	}

	prev, next := adjacentMonths(year, m)
	return &MonthView{
		Year:        year,
		Month:       month,
		MonthKey:    monthKey,
		Weeks:       MonthGrid(year, m),
		Weekdays:    WeekdayNames,
		Events:      events,
		Today:       today,
		TodayEvents: todayEvents,
		Now:         now.Format(domain.TimeLayout),
		Goal:        goal,
		Locations:   locations,
		Prev:        prev,
		Next:        next,
	}, nil
}

func (s *service) SetDone(ctx context.Context, username, date string, id int, done bool) (*pet.OutcomeResult, error) {
	log := logger.FromContext(ctx)
	log.Info("SetDone called", "username", username, "date", date, "id", id, "done", done)

	var result *pet.OutcomeResult
	err := s.locks.WithLock(lockPrefix+username, func() error {
		book, err := s.store.GetEvents(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to load events: %w", err)
		}
		if _, ok := book[date]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrDateNotFound, date)
		}
		idx := book.Find(date, id)
		if idx < 0 {
			return fmt.Errorf("%w: %s #%d", domain.ErrEventNotFound, date, id)
		}
		ev := &book[date][idx]
		if ev.Resolved() {
			return fmt.Errorf("%w: %s #%d", domain.ErrAlreadyResolved, date, id)
		}
		duration, err := ev.DurationMinutes()
		if err != nil {
			return err
		}
		if duration <= 0 {
			return fmt.Errorf("%w: %s-%s", domain.ErrInvalidTimeRange, ev.StartTime, ev.EndTime)
		}

		ev.Done = &done
		if err := s.store.SaveEvents(ctx, username, book); err != nil {
			return fmt.Errorf("failed to save events: %w", err)
		}

		result, err = s.pets.ResolveEventOutcome(ctx, username, duration, done)
		if err != nil {
			log.Error("Outcome recorded but pet update failed", "username", username, "date", date, "id", id, "error", err)
			return fmt.Errorf("failed to apply event outcome: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func parseMonthKey(monthKey string) error {
	if _, err := time.Parse(domain.MonthKeyLayout, monthKey); err != nil {
		return fmt.Errorf("%w: month key %q", domain.ErrInvalidDate, monthKey)
	}
	return nil
}

func (s *service) SetGoal(ctx context.Context, username, monthKey, text string) (*domain.Goal, error) {
	log := logger.FromContext(ctx)
	log.Info("SetGoal called", "username", username, "month", monthKey)

	if err := parseMonthKey(monthKey); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrGoalTextRequired
	}
	if len([]rune(text)) > MaxGoalTextLength {
		return nil, fmt.Errorf("%w: goal longer than %d characters", domain.ErrInvalidInput, MaxGoalTextLength)
	}

	var goal domain.Goal
	err := s.locks.WithLock(lockPrefix+username, func() error {
		goals, err := s.store.GetGoals(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		// an achieved goal stays achieved when its text is edited
		goal = domain.Goal{Text: text, Achieved: goals[monthKey].Achieved}
		goals[monthKey] = goal
		if err := s.store.SaveGoals(ctx, username, goals); err != nil {
			return fmt.Errorf("failed to save goals: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *service) AchieveGoal(ctx context.Context, username, monthKey string) (*GoalResult, error) {
	log := logger.FromContext(ctx)
	log.Info("AchieveGoal called", "username", username, "month", monthKey)

	if err := parseMonthKey(monthKey); err != nil {
		return nil, err
	}

	var view *pet.View
	err := s.locks.WithLock(lockPrefix+username, func() error {
		goals, err := s.store.GetGoals(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to load goals: %w", err)
		}
		goal, ok := goals[monthKey]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrGoalNotFound, monthKey)
		}
		if goal.Achieved {
			return fmt.Errorf("%w: %s", domain.ErrGoalAchieved, monthKey)
		}
		goal.Achieved = true
		goals[monthKey] = goal
		if err := s.store.SaveGoals(ctx, username, goals); err != nil {
			return fmt.Errorf("failed to save goals: %w", err)
		}

		view, err = s.pets.AwardCoins(ctx, username, s.goalReward, event.SourceGoal)
		if err != nil {
			return fmt.Errorf("failed to award goal reward: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	event.PublishBestEffort(ctx, s.bus, event.NewGoalAchievedEvent(username))
	return &GoalResult{
		MonthKey: monthKey,
		Reward:   s.goalReward,
		Coins:    view.Coins,
		Message:  view.Message,
	}, nil
}

func (s *service) GetLocations(ctx context.Context, username string) (domain.Locations, error) {
	locations, err := s.store.GetLocations(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	return locations, nil
}

func (s *service) SaveLocations(ctx context.Context, username string, locations domain.Locations) (domain.Locations, error) {
	log := logger.FromContext(ctx)
	log.Info("SaveLocations called", "username", username, "count", len(locations))

	if len(locations) == 0 {
		return nil, fmt.Errorf("%w: at least one location is required", domain.ErrInvalidInput)
	}
	clean := make(domain.Locations, len(locations))
	for name, colour := range locations {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: location name is empty", domain.ErrInvalidInput)
		}
		clean[name] = colour
	}

	err := s.locks.WithLock(lockPrefix+username, func() error {
		if err := s.store.SaveLocations(ctx, username, clean); err != nil {
			return fmt.Errorf("failed to save locations: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clean, nil
}
