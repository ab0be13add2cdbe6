package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueRoutes is the surface the router needs from the venue handler.
type VenueRoutes interface {
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	GetAllVenues(w http.ResponseWriter, r *http.Request)
	GetVenue(w http.ResponseWriter, r *http.Request)
	SearchVenues(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type AuthRoutes interface {
	Login(w http.ResponseWriter, r *http.Request)
	Signup(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type FavoriteRoutes interface {
	ListFavorites(w http.ResponseWriter, r *http.Request)
	FavoriteStatus(w http.ResponseWriter, r *http.Request)
	AddFavorite(w http.ResponseWriter, r *http.Request)
	RemoveFavorite(w http.ResponseWriter, r *http.Request)
}

type SessionRoutes interface {
	StartSession(w http.ResponseWriter, r *http.Request)
	GetState(w http.ResponseWriter, r *http.Request)
	EndSession(w http.ResponseWriter, r *http.Request)
	PostIntent(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler    VenueRoutes
	authHandler     AuthRoutes
	favoriteHandler FavoriteRoutes
	sessionHandler  SessionRoutes
	router          *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	venueHandler VenueRoutes,
	authHandler AuthRoutes,
	favoriteHandler FavoriteRoutes,
	sessionHandler SessionRoutes,
	router *mux.Router) *Router {
	return &Router{
		venueHandler:    venueHandler,
		authHandler:     authHandler,
		favoriteHandler: favoriteHandler,
		sessionHandler:  sessionHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?lat={latitude(float)}&lng={longitude(float)}&radius={radius(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")
	r.router.HandleFunc("/v1/venues/search", r.venueHandler.SearchVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues", r.venueHandler.GetAllVenues).Methods("GET")
	r.router.HandleFunc("/v1/venues/{venue_id}", r.venueHandler.GetVenue).Methods("GET")

	r.router.HandleFunc("/v1/auth/login", r.authHandler.Login).Methods("POST")
	r.router.HandleFunc("/v1/auth/signup", r.authHandler.Signup).Methods("POST")

	protected := r.router.PathPrefix("/v1").Subrouter()
	protected.Use(AuthMiddleware)
	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods("POST")
	protected.HandleFunc("/auth/password", r.authHandler.ChangePassword).Methods("PUT")
	protected.HandleFunc("/auth/account", r.authHandler.DeleteAccount).Methods("DELETE")
	protected.HandleFunc("/favorites", r.favoriteHandler.ListFavorites).Methods("GET")
	protected.HandleFunc("/favorites/{venue_id}", r.favoriteHandler.FavoriteStatus).Methods("GET")
	protected.HandleFunc("/favorites/{venue_id}", r.favoriteHandler.AddFavorite).Methods("PUT")
	protected.HandleFunc("/favorites/{venue_id}", r.favoriteHandler.RemoveFavorite).Methods("DELETE")

	r.router.HandleFunc("/v1/map/sessions", r.sessionHandler.StartSession).Methods("POST")
	r.router.HandleFunc("/v1/map/sessions/{session_id}", r.sessionHandler.GetState).Methods("GET")
	r.router.HandleFunc("/v1/map/sessions/{session_id}", r.sessionHandler.EndSession).Methods("DELETE")
	r.router.HandleFunc("/v1/map/sessions/{session_id}/intents", r.sessionHandler.PostIntent).Methods("POST")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
