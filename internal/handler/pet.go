package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/PetCalendar_Go/internal/domain"
	"github.com/osse101/PetCalendar_Go/internal/pet"
)

// PetHandler handles pet, shop and pokedex endpoints
type PetHandler struct {
	service pet.Service
}

// NewPetHandler creates a new pet handler
func NewPetHandler(service pet.Service) *PetHandler {
	return &PetHandler{service: service}
}

// SpeciesRequest selects a species for Start and Revive
type SpeciesRequest struct {
	SpeciesID int `json:"species_id" validate:"required,min=1,max=6"`
}

// FeedRequest is the request body for feeding
type FeedRequest struct {
	Food string `json:"food" validate:"required,food"`
}

// BuyFoodRequest is the request body for shop purchases
type BuyFoodRequest struct {
	Food     string `json:"food" validate:"required,food"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=99"`
}

func foodTier(name string) domain.FoodTier {
	return domain.FoodTier(strings.ToLower(name))
}

// HandleGetPet returns the current pet
func (h *PetHandler) HandleGetPet(w http.ResponseWriter, r *http.Request) {
	handleUserQuery(w, r, "Get pet", h.service.GetPet)
}

// HandleStart begins raising a pet
func (h *PetHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Start pet", http.StatusCreated,
		func(ctx context.Context, username string, req SpeciesRequest) (*pet.View, error) {
			return h.service.Start(ctx, username, domain.SpeciesID(req.SpeciesID))
		})
}

// HandleRevive restarts a pet from an egg
func (h *PetHandler) HandleRevive(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Revive pet", http.StatusOK,
		func(ctx context.Context, username string, req SpeciesRequest) (*pet.View, error) {
			return h.service.Revive(ctx, username, domain.SpeciesID(req.SpeciesID))
		})
}

// HandleReset returns the pet to the never-started state
func (h *PetHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	handleUserQuery(w, r, "Reset pet", h.service.Reset)
}

// HandleFeed feeds one unit of food
func (h *PetHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Feed pet", http.StatusOK,
		func(ctx context.Context, username string, req FeedRequest) (*pet.FeedResult, error) {
			return h.service.Feed(ctx, username, foodTier(req.Food))
		})
}

// HandleGetShop lists the shop
func (h *PetHandler) HandleGetShop(w http.ResponseWriter, r *http.Request) {
	handleUserQuery(w, r, "Get shop", h.service.Shop)
}

// HandleBuyFood buys food
func (h *PetHandler) HandleBuyFood(w http.ResponseWriter, r *http.Request) {
	handleUserAction(w, r, "Buy food", http.StatusOK,
		func(ctx context.Context, username string, req BuyFoodRequest) (*pet.PurchaseResult, error) {
			return h.service.BuyFood(ctx, username, foodTier(req.Food), req.Quantity)
		})
}

// HandleGetPokedex returns the discovery catalogue
func (h *PetHandler) HandleGetPokedex(w http.ResponseWriter, r *http.Request) {
	handleUserQuery(w, r, "Get pokedex", h.service.Pokedex)
}

// HandleGetSpecies lists the selectable species. It needs no identity.
func (h *PetHandler) HandleGetSpecies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Species())
}
