package redis

import (
	"context"
	"testing"

	"dm-server/db"

	"github.com/stretchr/testify/assert"
)

func TestFavoriteDAO_AddRemoveCycle(t *testing.T) {
	dao := NewRedisFavoriteDAO(db.NewMockRedisClient(context.Background()))

	favored, err := dao.IsFavorite("010-1234-5678", "store-1")
	assert.NoError(t, err)
	assert.False(t, favored)

	assert.NoError(t, dao.AddFavorite("010-1234-5678", "store-1"))
	assert.NoError(t, dao.AddFavorite("010-1234-5678", "store-2"))
	// adding twice is idempotent
	assert.NoError(t, dao.AddFavorite("010-1234-5678", "store-1"))

	favored, err = dao.IsFavorite("010-1234-5678", "store-1")
	assert.NoError(t, err)
	assert.True(t, favored)

	ids, err := dao.ListFavorites("010-1234-5678")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"store-1", "store-2"}, ids)

	assert.NoError(t, dao.RemoveFavorite("010-1234-5678", "store-1"))
	favored, err = dao.IsFavorite("010-1234-5678", "store-1")
	assert.NoError(t, err)
	assert.False(t, favored)
}

func TestFavoriteDAO_UsersAreIsolated(t *testing.T) {
	dao := NewRedisFavoriteDAO(db.NewMockRedisClient(context.Background()))

	assert.NoError(t, dao.AddFavorite("010-1111-1111", "store-1"))

	ids, err := dao.ListFavorites("010-2222-2222")
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
