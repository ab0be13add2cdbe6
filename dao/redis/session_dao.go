package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"dm-server/db"
	"dm-server/models"
)

const AUTH_STORAGE_KEY_FORMAT_V1 = "auth_storage_v1:%s"

// RedisSessionDAO persists the single auth-storage record per user so a
// logged-in session survives app restarts.
type RedisSessionDAO struct {
	client db.RedisClient
}

// NewRedisSessionDAO initializes a RedisSessionDAO with the Redis client.
func NewRedisSessionDAO(client db.RedisClient) *RedisSessionDAO {
	return &RedisSessionDAO{client: client}
}

// SaveSession writes the auth-storage record.
func (dao *RedisSessionDAO) SaveSession(s models.Session) error {
	key := fmt.Sprintf(AUTH_STORAGE_KEY_FORMAT_V1, s.UserPhone)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session for %s: %w", s.UserPhone, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}

// LoadSession restores the auth-storage record, or returns nil when none
// was persisted.
func (dao *RedisSessionDAO) LoadSession(phone string) (*models.Session, error) {
	key := fmt.Sprintf(AUTH_STORAGE_KEY_FORMAT_V1, phone)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "nil") {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	var s models.Session
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session JSON: %w", err)
	}
	return &s, nil
}

// DeleteSession clears the persisted record on logout or account deletion.
func (dao *RedisSessionDAO) DeleteSession(phone string) error {
	key := fmt.Sprintf(AUTH_STORAGE_KEY_FORMAT_V1, phone)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}
