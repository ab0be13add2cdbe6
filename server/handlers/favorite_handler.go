package handlers

import (
	"log"
	"net/http"

	services "dm-server/service"

	"github.com/gorilla/mux"
)

// FavoriteHandler serves the favorites routes. Every route requires the
// auth middleware; the phone comes off the request context.
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// ListFavorites handles GET /v1/favorites.
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	phone := PhoneFromContext(r.Context())

	venues, err := h.favoriteService.ListFavorites(phone)
	if err != nil {
		log.Println("Error listing favorites:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, venues)
}

// FavoriteStatus handles GET /v1/favorites/{venue_id}.
func (h *FavoriteHandler) FavoriteStatus(w http.ResponseWriter, r *http.Request) {
	phone := PhoneFromContext(r.Context())
	venueID := mux.Vars(r)["venue_id"]

	favored, err := h.favoriteService.FavoriteStatus(phone, venueID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]bool{"favorite": favored})
}

// AddFavorite handles PUT /v1/favorites/{venue_id}.
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	phone := PhoneFromContext(r.Context())
	venueID := mux.Vars(r)["venue_id"]

	if err := h.favoriteService.AddFavorite(phone, venueID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"status": "added"})
}

// RemoveFavorite handles DELETE /v1/favorites/{venue_id}.
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	phone := PhoneFromContext(r.Context())
	venueID := mux.Vars(r)["venue_id"]

	if err := h.favoriteService.RemoveFavorite(phone, venueID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]string{"status": "removed"})
}
