package panel

import (
	"dm-server/models"
	"dm-server/models/route"
	"dm-server/models/venue"
)

// State is the wire-friendly snapshot of a coordinator, handed to the
// rendering surface. The session token is deliberately omitted.
type State struct {
	Screen         string                       `json:"screen"`
	Panel          string                       `json:"panel"`
	LoadState      string                       `json:"load_state"`
	IsLoggedIn     bool                         `json:"is_logged_in"`
	UserName       string                       `json:"user_name,omitempty"`
	SelectedVenue  *venue.Venue                 `json:"selected_venue,omitempty"`
	VenueOpen      bool                         `json:"venue_open"`
	RouteSummary   *route.RouteSummary          `json:"route_summary,omitempty"`
	RoutePath      []models.Point               `json:"route_path,omitempty"`
	Favorites      []venue.Venue                `json:"favorites,omitempty"`
	Recommendation *models.RecommendationResult `json:"recommendation,omitempty"`
	SignupStep     int                          `json:"signup_step"`
}

// State captures the current snapshot.
func (c *Coordinator) State() State {
	return State{
		Screen:         c.screen.String(),
		Panel:          c.current.String(),
		LoadState:      c.loadState.String(),
		IsLoggedIn:     c.session.IsLoggedIn,
		UserName:       c.session.UserName,
		SelectedVenue:  c.selectedVenue,
		VenueOpen:      c.venueOpen,
		RouteSummary:   c.routeSummary,
		RoutePath:      c.routePath,
		Favorites:      c.favorites,
		Recommendation: c.recommendation,
		SignupStep:     c.signupStep,
	}
}
