package services

import (
	"strings"
	"time"

	"dm-server/dao/redis"
	"dm-server/models/venue"
)

// VenueService serves venue lookups for the map surface.
type VenueService struct {
	venueDao *redis.RedisVenueDAO
}

// NewVenueService constructs a new VenueService with Redis dependency injection.
func NewVenueService(venueDao *redis.RedisVenueDAO) *VenueService {
	return &VenueService{
		venueDao: venueDao,
	}
}

func (vs *VenueService) GetVenuesNearby(lat, lng, radius float64) ([]venue.Venue, error) {
	return vs.venueDao.GetNearbyVenues(lat, lng, radius)
}

func (vs *VenueService) GetAllVenues() ([]venue.Venue, error) {
	return vs.venueDao.GetAllVenues()
}

// GetVenue returns the detailed record for a single venue.
func (vs *VenueService) GetVenue(venueID string) (*venue.Venue, error) {
	return vs.venueDao.GetVenue(venueID)
}

// SearchVenues filters the catalog by a name substring. An empty keyword
// returns everything.
func (vs *VenueService) SearchVenues(keyword string) ([]venue.Venue, error) {
	venues, err := vs.venueDao.GetAllVenues()
	if err != nil {
		return nil, err
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return venues, nil
	}

	filtered := make([]venue.Venue, 0, len(venues))
	for _, v := range venues {
		if strings.Contains(v.VenueName, keyword) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// IsVenueOpen evaluates a venue's operating hours against now.
func (vs *VenueService) IsVenueOpen(v *venue.Venue, now time.Time) bool {
	if v == nil {
		return false
	}
	return v.IsOpen(now)
}
