package redis

import (
	"context"
	"testing"

	"dm-server/db"
	"dm-server/models"

	"github.com/stretchr/testify/assert"
)

func TestUserDAO_UpsertFindDelete(t *testing.T) {
	dao := NewRedisUserDAO(db.NewMockRedisClient(context.Background()))

	u := models.User{
		UserID:       "9f6c2c1e-0000-4000-8000-000000000001",
		UserName:     "김영희",
		UserPhone:    "010-1234-5678",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, dao.UpsertUser(u))

	got, err := dao.FindByPhone("010-1234-5678")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, "김영희", got.UserName)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)

	assert.NoError(t, dao.DeleteUser("010-1234-5678"))
	got, err = dao.FindByPhone("010-1234-5678")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserDAO_FindByPhone_MissingIsNotAnError(t *testing.T) {
	dao := NewRedisUserDAO(db.NewMockRedisClient(context.Background()))

	got, err := dao.FindByPhone("010-0000-0000")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
