package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Chimelu/hafak-surgicals-backend/internal/cache"
	"github.com/Chimelu/hafak-surgicals-backend/internal/config"
	"github.com/Chimelu/hafak-surgicals-backend/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 10 * time.Minute,
	}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	id := uuid.New()
	testKey := cache.Key(cache.PublicEquipmentKeyPrefix, id.String())
	cached := models.Equipment{ID: id, Name: "Digital Stethoscope", Brand: "CardioTech"}
	jsonData, err := json.Marshal(cached)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		var result models.Equipment

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		// Act
		found, err := redisCache.Get(ctx, testKey, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, cached.ID, result.ID)
		assert.Equal(t, "Digital Stethoscope", result.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		var result models.Equipment

		mock.ExpectGet(testKey).SetErr(redis.Nil)

		found, err := redisCache.Get(ctx, testKey, &result)

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		var result models.Equipment
		expectedErr := errors.New("redis connection error")

		mock.ExpectGet(testKey).SetErr(expectedErr)

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt Entry", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		var result models.Equipment

		mock.ExpectGet(testKey).SetVal(`{"name": 42}`)

		found, err := redisCache.Get(ctx, testKey, &result)

		require.Error(t, err)
		assert.False(t, found)

		var jsonErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	value := []*models.CategoryWithCount{{ID: uuid.New(), Name: "Diagnostic Equipment", EquipmentCount: 2}}
	jsonData, err := json.Marshal(value)
	require.NoError(t, err)

	t.Run("Success - With Specific TTL", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		mock.ExpectSet(cache.PublicCategoriesKey, jsonData, time.Minute).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, cache.PublicCategoriesKey, value, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Default TTL", func(t *testing.T) {
		redisCache, mock, cfg := setup(t)

		mock.ExpectSet(cache.PublicCategoriesKey, jsonData, cfg.DefaultTTL).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, cache.PublicCategoriesKey, value, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		err := redisCache.Set(ctx, cache.PublicCategoriesKey, make(chan int), time.Minute)

		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis SET failed")

		mock.ExpectSet(cache.PublicCategoriesKey, jsonData, time.Minute).SetErr(expectedErr)

		err := redisCache.Set(ctx, cache.PublicCategoriesKey, value, time.Minute)

		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	equipmentKey := cache.Key(cache.PublicEquipmentKeyPrefix, uuid.NewString())

	t.Run("Success - several keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		mock.ExpectDel(equipmentKey, cache.PublicCategoriesKey).SetVal(2)

		require.NoError(t, redisCache.Delete(ctx, equipmentKey, cache.PublicCategoriesKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - nothing to delete", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		require.NoError(t, redisCache.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis DEL failed")

		mock.ExpectDel(equipmentKey).SetErr(expectedErr)

		assert.ErrorIs(t, redisCache.Delete(ctx, equipmentKey), expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoopCache(t *testing.T) {
	noop := cache.NewNoopCache()
	var result models.Equipment

	found, err := noop.Get(t.Context(), "any", &result)

	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, noop.Set(t.Context(), "any", result, time.Minute))
	assert.NoError(t, noop.Delete(t.Context(), "any"))
	assert.NoError(t, noop.Close())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "equipment:public:abc", cache.Key(cache.PublicEquipmentKeyPrefix, "abc"))
	assert.Equal(t, "prefix:", cache.Key("prefix", ""))
}
