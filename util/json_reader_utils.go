package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"dm-server/models/route"
	"dm-server/models/venue"
)

// ReadVenuesFromJSON loads the venue seed list from JSON on disk.
func ReadVenuesFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}
	return venues, nil
}

// ReadVenueFromJSON loads a single Venue from JSON on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var v venue.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Venue: %w", err)
	}
	return &v, nil
}

// ReadRouteResponseFromJSON loads a RouteResponse fixture from JSON on disk.
func ReadRouteResponseFromJSON(filePath string) (*route.RouteResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp route.RouteResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal RouteResponse: %w", err)
	}
	return &resp, nil
}

// PrintVenuesPartially prints key fields of a loaded venue list.
func PrintVenuesPartially(venues []venue.Venue) {
	fmt.Printf("Venues loaded: %d\n", len(venues))
	if len(venues) > 0 {
		v := venues[0]
		fmt.Printf("First venue: %s at %s (%.6f, %.6f)\n", v.VenueName, v.VenueAddress, v.VenueLat, v.VenueLng)
	}
}
