package services

import (
	"log"

	"dm-server/dao/redis"
	"dm-server/models/venue"
)

// FavoriteService manages a user's favorite venues.
type FavoriteService struct {
	favoriteDao *redis.RedisFavoriteDAO
	venueDao    *redis.RedisVenueDAO
}

func NewFavoriteService(favoriteDao *redis.RedisFavoriteDAO, venueDao *redis.RedisVenueDAO) *FavoriteService {
	return &FavoriteService{
		favoriteDao: favoriteDao,
		venueDao:    venueDao,
	}
}

// ListFavorites resolves the user's favorite IDs into venue records.
// Favorites whose venue has disappeared from the catalog are skipped.
func (fs *FavoriteService) ListFavorites(userID string) ([]venue.Venue, error) {
	ids, err := fs.favoriteDao.ListFavorites(userID)
	if err != nil {
		return nil, err
	}

	venues := make([]venue.Venue, 0, len(ids))
	for _, id := range ids {
		v, err := fs.venueDao.GetVenue(id)
		if err != nil {
			log.Printf("[FavoriteService] Skipping favorite %s: %v", id, err)
			continue
		}
		venues = append(venues, *v)
	}
	return venues, nil
}

// FavoriteStatus reports whether the venue is favorited by the user.
func (fs *FavoriteService) FavoriteStatus(userID, venueID string) (bool, error) {
	return fs.favoriteDao.IsFavorite(userID, venueID)
}

func (fs *FavoriteService) AddFavorite(userID, venueID string) error {
	return fs.favoriteDao.AddFavorite(userID, venueID)
}

func (fs *FavoriteService) RemoveFavorite(userID, venueID string) error {
	return fs.favoriteDao.RemoveFavorite(userID, venueID)
}
