package db

import "context"

// RedisClient defines the methods available in the Redis-backed store
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lng, radius float64) ([]string, error)
	SAdd(key, member string) error
	SRem(key, member string) error
	SMembers(key string) ([]string, error)
	SIsMember(key, member string) (bool, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
