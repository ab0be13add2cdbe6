package redis

import (
	"fmt"

	"dm-server/db"
)

const FAVORITES_KEY_FORMAT_V1 = "favorites_v1:%s"

// RedisFavoriteDAO stores each user's favorite venue IDs as a Redis set.
type RedisFavoriteDAO struct {
	client db.RedisClient
}

// NewRedisFavoriteDAO initializes a RedisFavoriteDAO with the Redis client.
func NewRedisFavoriteDAO(client db.RedisClient) *RedisFavoriteDAO {
	return &RedisFavoriteDAO{client: client}
}

// AddFavorite marks a venue as a favorite of the user.
func (dao *RedisFavoriteDAO) AddFavorite(userID, venueID string) error {
	key := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, userID)
	if err := dao.client.SAdd(key, venueID); err != nil {
		return fmt.Errorf("failed to add favorite %s for user %s: %w", venueID, userID, err)
	}
	return nil
}

// RemoveFavorite clears a venue from the user's favorites.
func (dao *RedisFavoriteDAO) RemoveFavorite(userID, venueID string) error {
	key := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, userID)
	if err := dao.client.SRem(key, venueID); err != nil {
		return fmt.Errorf("failed to remove favorite %s for user %s: %w", venueID, userID, err)
	}
	return nil
}

// IsFavorite reports whether the venue is among the user's favorites.
func (dao *RedisFavoriteDAO) IsFavorite(userID, venueID string) (bool, error) {
	key := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, userID)
	isMember, err := dao.client.SIsMember(key, venueID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite status: %w", err)
	}
	return isMember, nil
}

// ListFavorites returns the venue IDs the user has favorited.
func (dao *RedisFavoriteDAO) ListFavorites(userID string) ([]string, error) {
	key := fmt.Sprintf(FAVORITES_KEY_FORMAT_V1, userID)
	ids, err := dao.client.SMembers(key)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user %s: %w", userID, err)
	}
	return ids, nil
}
