package tests

import (
	"context"
	"testing"
	"time"

	"restrofi/events"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisMenuCacheRoundTrip(t *testing.T) {
	mr, client := setupRedis(t)
	cache := storage.NewRedisCache(client, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.GetMenu(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.SetMenu(ctx, "r1", sampleMenu()))
	assert.Equal(t, time.Minute, mr.TTL(cache.MenuKey("r1")))

	got, ok, err := cache.GetMenu(ctx, "r1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 3)
	assert.Equal(t, "m1", got[0].ID)
	assert.True(t, decimal.NewFromInt(850).Equal(got[0].Price))

	require.NoError(t, cache.InvalidateMenu(ctx, "r1"))
	_, ok, err = cache.GetMenu(ctx, "r1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisMenuCacheCorruptPayload(t *testing.T) {
	mr, client := setupRedis(t)
	cache := storage.NewRedisCache(client, time.Minute)
	require.NoError(t, mr.Set(cache.MenuKey("r1"), "not json"))

	_, ok, err := cache.GetMenu(context.Background(), "r1")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestAttemptLimiterWindow(t *testing.T) {
	mr, client := setupRedis(t)
	limiter := storage.NewAttemptLimiter(client, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "pin:s1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := limiter.Allow(ctx, "pin:s1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "pin:s2")
	require.NoError(t, err)
	assert.True(t, ok, "keys are counted separately")

	mr.FastForward(time.Minute + time.Second)
	ok, err = limiter.Allow(ctx, "pin:s1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAttemptLimiterRedisDown(t *testing.T) {
	mr, client := setupRedis(t)
	mr.Close()

	_, err := storage.NewAttemptLimiter(client, 5, time.Minute).Allow(context.Background(), "pin:s1")

	assert.Error(t, err)
}

func TestRedisStatsDailyStats(t *testing.T) {
	mr, client := setupRedis(t)
	stats := storage.NewRedisStats(client)
	ctx := context.Background()
	day := "2025-12-10"

	_, found, err := stats.DailyStats(ctx, "r1", day, 5)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, mr.Set(events.DailyOrdersKey(day, "r1"), "2"))
	require.NoError(t, mr.Set(events.DailyRevenueKey(day, "r1"), "1627500"))
	_, err = mr.ZAdd(events.DailyItemsKey(day, "r1"), 3, "m1")
	require.NoError(t, err)
	_, err = mr.ZAdd(events.DailyItemsKey(day, "r1"), 1, "m2")
	require.NoError(t, err)
	_, err = mr.ZAdd(events.DailyItemsKey(day, "r1"), 0, "m3")
	require.NoError(t, err)
	mr.HSet(events.DailyItemNamesKey(day, "r1"), "m1", "Paneer Tikka", "m2", "Dal")
	mr.HSet(events.DailyServiceKey(day, "r1"), "WATER", "2")

	got, found, err := stats.DailyStats(ctx, "r1", day, 5)

	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, day, got.Day)
	assert.Equal(t, int64(2), got.OrderCount)
	assert.True(t, decimal.RequireFromString("1627.5").Equal(got.Revenue))
	assert.Equal(t, []domain.DishCount{
		{MenuItemID: "m1", Name: "Paneer Tikka", Quantity: 3},
		{MenuItemID: "m2", Name: "Dal", Quantity: 1},
	}, got.TopItems)
	assert.Equal(t, map[string]int64{"WATER": 2}, got.ServiceRequests)
}
