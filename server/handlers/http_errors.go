package handlers

import (
	"errors"
	"log"
	"net/http"

	"dm-server/util"
)

// writeError maps service errors onto HTTP status codes. Anything not
// recognized is a 500 and gets logged.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, util.ErrValidationFailed):
		http.Error(w, "Invalid request", http.StatusBadRequest)
	case errors.Is(err, util.ErrAuthFailed):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, util.ErrUnauthorized):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, util.ErrPhoneTaken):
		http.Error(w, "Phone already registered", http.StatusConflict)
	case errors.Is(err, util.ErrVenueNotFound),
		errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrSessionNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, util.ErrRouteRequestFailed):
		http.Error(w, "Route request failed", http.StatusBadGateway)
	default:
		log.Println("Unhandled error:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
