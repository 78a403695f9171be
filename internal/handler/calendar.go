package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/osse101/PetCalendar_Go/internal/calendar"
	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/pet"
)

// CalendarHandler handles calendar, goal and location endpoints
type CalendarHandler struct {
	service calendar.Service
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(service calendar.Service) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// AddEventRequest is the request body for creating an event
type AddEventRequest struct {
	Date      string `json:"date" validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
	Text      string `json:"text" validate:"max=200"`
	Location  string `json:"location" validate:"omitempty,max=32"`
}

// UpdateEventRequest is the request body for editing an event
type UpdateEventRequest struct {
	ID int `json:"id" validate:"required,min=1"`
	AddEventRequest
}

// SetDoneRequest records an event outcome
type SetDoneRequest struct {
	Date string `json:"date" validate:"required,date"`
	ID   int    `json:"id" validate:"required,min=1"`
	Done *bool  `json:"done" validate:"required"`
}

// SetGoalRequest sets the goal of a month
type SetGoalRequest struct {
	MonthKey string `json:"month_key" validate:"required,monthkey"`
	Goal     string `json:"goal" validate:"required,max=200"`
}

// AchieveGoalRequest marks a monthly goal achieved
type AchieveGoalRequest struct {
	MonthKey string `json:"month_key" validate:"required,monthkey"`
}

// SaveLocationsRequest replaces the location palette
type SaveLocationsRequest struct {
	Locations map[string]string `json:"locations" validate:"required,min=1,max=32,dive,keys,required,max=32,endkeys,hexcolor"`
}

// LocationsResponse wraps the location palette
type LocationsResponse struct {
	Locations domain.Locations `json:"locations"`
}

func (req AddEventRequest) input() calendar.EventInput {
	return calendar.EventInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Text:      req.Text,
		Location:  req.Location,
	}
}

// HandleGetMonth returns one month of the calendar
func (h *CalendarHandler) HandleGetMonth(w http.ResponseWriter, r *http.Request) {
	year, ok := getIntParam(r, w, "year", true)
	if !ok {
		return
	}
	month, ok := getIntParam(r, w, "month", true)
	if !ok {
		return
	}
	handleUserQuery(w, r, "Get month", func(ctx context.Context, username string) (*calendar.MonthView, error) {
		return h.service.ListMonth(ctx, username, year, month)
	})
}

// HandleAddEvent creates an event
func (h *CalendarHandler) HandleAddEvent(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Add event", http.StatusCreated,
		func(ctx context.Context, username string, req AddEventRequest) (*domain.Event, error) {
			return h.service.AddEvent(ctx, username, req.input())
		})
}

// HandleUpdateEvent edits an event
func (h *CalendarHandler) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Update event", http.StatusOK,
		func(ctx context.Context, username string, req UpdateEventRequest) (*domain.Event, error) {
			return h.service.UpdateEvent(ctx, username, req.ID, req.input())
		})
}

// HandleDeleteEvent removes an event identified by the date and id query parameters
func (h *CalendarHandler) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	date, ok := GetQueryParam(r, w, "date")
	if !ok {
		return
	}
	id, ok := getIntParam(r, w, "id", false)
	if !ok {
		return
	}
	handleUserQuery(w, r, "Delete event", func(ctx context.Context, username string) (*SuccessResponse, error) {
		if err := h.service.DeleteEvent(ctx, username, date, id); err != nil {
			return nil, err
		}
		return &SuccessResponse{Message: "Event " + date + " #" + strconv.Itoa(id) + " deleted"}, nil
	})
}

// HandleSetDone records whether an event was completed and applies the pet outcome
func (h *CalendarHandler) HandleSetDone(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Set event outcome", http.StatusOK,
		func(ctx context.Context, username string, req SetDoneRequest) (*pet.OutcomeResult, error) {
			return h.service.SetDone(ctx, username, req.Date, req.ID, *req.Done)
		})
}

// HandleSetGoal sets a monthly goal
func (h *CalendarHandler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Set goal", http.StatusOK,
		func(ctx context.Context, username string, req SetGoalRequest) (*domain.Goal, error) {
			return h.service.SetGoal(ctx, username, req.MonthKey, req.Goal)
		})
}

// HandleAchieveGoal completes a monthly goal and pays its reward
func (h *CalendarHandler) HandleAchieveGoal(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Achieve goal", http.StatusOK,
		func(ctx context.Context, username string, req AchieveGoalRequest) (*calendar.GoalResult, error) {
			return h.service.AchieveGoal(ctx, username, req.MonthKey)
		})
}

// HandleGetLocations returns the location palette
func (h *CalendarHandler) HandleGetLocations(w http.ResponseWriter, r *http.Request) {
	handleUserQuery(w, r, "Get locations", func(ctx context.Context, username string) (*LocationsResponse, error) {
		locations, err := h.service.GetLocations(ctx, username)
		if err != nil {
			return nil, err
		}
		return &LocationsResponse{Locations: locations}, nil
	})
}

// HandleSaveLocations replaces the location palette
func (h *CalendarHandler) HandleSaveLocations(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Save locations", http.StatusOK,
		func(ctx context.Context, username string, req SaveLocationsRequest) (*LocationsResponse, error) {
			locations, err := h.service.SaveLocations(ctx, username, domain.Locations(req.Locations))
			if err != nil {
				return nil, err
			}
			return &LocationsResponse{Locations: locations}, nil
		})
}
