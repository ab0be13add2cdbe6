package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"dm-server/db"
	"dm-server/models"
)

const USER_KEY_FORMAT_V1 = "user_v1:%s"

// RedisUserDAO stores registered accounts keyed by phone number.
type RedisUserDAO struct {
	client db.RedisClient
}

// NewRedisUserDAO initializes a RedisUserDAO with the Redis client.
func NewRedisUserDAO(client db.RedisClient) *RedisUserDAO {
	return &RedisUserDAO{client: client}
}

// UpsertUser stores the user record as JSON.
func (dao *RedisUserDAO) UpsertUser(u models.User) error {
	key := fmt.Sprintf(USER_KEY_FORMAT_V1, u.UserPhone)
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to marshal user %s: %w", u.UserPhone, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set user in redis: %w", err)
	}
	return nil
}

// FindByPhone returns the user record for a phone number, or nil when no
// account exists.
func (dao *RedisUserDAO) FindByPhone(phone string) (*models.User, error) {
	key := fmt.Sprintf(USER_KEY_FORMAT_V1, phone)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "nil") {
			return nil, nil // Missing key is not an error here
		}
		return nil, fmt.Errorf("failed to get user from redis: %w", err)
	}
	var u models.User
	if err := json.Unmarshal([]byte(str), &u); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user JSON: %w", err)
	}
	return &u, nil
}

// DeleteUser removes the account record.
func (dao *RedisUserDAO) DeleteUser(phone string) error {
	key := fmt.Sprintf(USER_KEY_FORMAT_V1, phone)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete user key %s: %w", key, err)
	}
	return nil
}
