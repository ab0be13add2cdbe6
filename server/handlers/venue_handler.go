package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dm-server/models/venue"
	services "dm-server/service"

	"github.com/gorilla/mux"
)

const (
	LAT_QUERY_ARG     = "lat"
	LNG_QUERY_ARG     = "lng"
	RADIUS_QUERY_ARG  = "radius"
	KEYWORD_QUERY_ARG = "q"
)

// VenueWithStatus pairs a Venue with its open flag at request time.
type VenueWithStatus struct {
	Venue venue.Venue `json:"venue"`
	Open  bool        `json:"open"`
}

type VenueHandler struct {
	venueService *services.VenueService
}

func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// GetVenuesNearby handles GET /v1/venues/nearby.
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lng, radius, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	venues, err := h.venueService.GetVenuesNearby(lat, lng, radius)
	if err != nil {
		log.Println("Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.withStatus(venues))
}

// GetAllVenues handles GET /v1/venues.
func (h *VenueHandler) GetAllVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := h.venueService.GetAllVenues()
	if err != nil {
		log.Println("Error loading venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.withStatus(venues))
}

// GetVenue handles GET /v1/venues/{venue_id}.
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venue_id"]

	v, err := h.venueService.GetVenue(venueID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, VenueWithStatus{
		Venue: *v,
		Open:  h.venueService.IsVenueOpen(v, time.Now()),
	})
}

// SearchVenues handles GET /v1/venues/search?q=keyword.
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get(KEYWORD_QUERY_ARG)

	venues, err := h.venueService.SearchVenues(keyword)
	if err != nil {
		log.Println("Error searching venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.withStatus(venues))
}

// Ping handles GET /ping
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *VenueHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lng, radius float64, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err = parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LNG_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}

func (h *VenueHandler) withStatus(venues []venue.Venue) []VenueWithStatus {
	now := time.Now()
	out := make([]VenueWithStatus, 0, len(venues))
	for i := range venues {
		out = append(out, VenueWithStatus{
			Venue: venues[i],
			Open:  h.venueService.IsVenueOpen(&venues[i], now),
		})
	}
	return out
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
