package util

import "errors"

var (
	// ErrRouteRequestFailed covers provider or transport failures during
	// a directions fetch. Surfaced inline; the route panel stays closed.
	ErrRouteRequestFailed = errors.New("route request failed")

	// ErrStaleResponse marks a superseded directions or detail fetch.
	// Discarded silently, never surfaced.
	ErrStaleResponse = errors.New("stale response discarded")

	// ErrAuthFailed covers bad credentials. Retryable inline prompt.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrValidationFailed covers client-side form constraints; the
	// request never reaches the network.
	ErrValidationFailed = errors.New("validation failed")

	ErrVenueNotFound   = errors.New("venue not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrPhoneTaken      = errors.New("phone number already registered")
	ErrUnauthorized    = errors.New("missing or invalid token")
	ErrSessionNotFound = errors.New("map session not found")
)
