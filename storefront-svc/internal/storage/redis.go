package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"restrofi/events"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

var _ service.MenuCache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) MenuKey(restaurantID string) string {
	return "menu:" + restaurantID
}

func (c *RedisCache) GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuEntry, bool, error) {
	raw, err := c.Client.Get(ctx, c.MenuKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var entries []domain.MenuEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, err
	}
	return entries, true, nil
}

func (c *RedisCache) SetMenu(ctx context.Context, restaurantID string, entries []domain.MenuEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.MenuKey(restaurantID), payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateMenu(ctx context.Context, restaurantID string) error {
	return c.Client.Del(ctx, c.MenuKey(restaurantID)).Err()
}

// AttemptLimiter is a fixed-window counter: the first hit in a window sets
// the expiry, every hit past Limit is refused until the key expires.
type AttemptLimiter struct {
	Client *redis.Client
	Limit  int64
	Window time.Duration
}

var _ service.AttemptLimiter = (*AttemptLimiter)(nil)

func NewAttemptLimiter(client *redis.Client, limit int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{Client: client, Limit: int64(limit), Window: window}
}

func (l *AttemptLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = "attempts:" + key
	n, err := l.Client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.Client.Expire(ctx, key, l.Window).Err(); err != nil {
			return false, err
		}
	}
	return n <= l.Limit, nil
}

// RedisStats reads the counters agg-svc folds order events into.
type RedisStats struct {
	Client *redis.Client
}

var _ service.StatsReader = (*RedisStats)(nil)

func NewRedisStats(client *redis.Client) *RedisStats {
	return &RedisStats{Client: client}
}

// DailyStats reports found=false when no order has been counted for the day
// yet, letting the caller fall back to Postgres.
func (s *RedisStats) DailyStats(ctx context.Context, restaurantID, day string, topN int) (*domain.DailyStats, bool, error) {
	pipe := s.Client.Pipeline()
	orders := pipe.Get(ctx, events.DailyOrdersKey(day, restaurantID))
	revenue := pipe.Get(ctx, events.DailyRevenueKey(day, restaurantID))
	items := pipe.ZRevRangeWithScores(ctx, events.DailyItemsKey(day, restaurantID), 0, int64(topN-1))
	names := pipe.HGetAll(ctx, events.DailyItemNamesKey(day, restaurantID))
	requests := pipe.HGetAll(ctx, events.DailyServiceKey(day, restaurantID))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, false, err
	}

	count, err := orders.Int64()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	stats := &domain.DailyStats{
		Day:        day,
		Revenue:    decimal.Zero,
		OrderCount: count,
		TopItems:   []domain.DishCount{},
	}
	if units, err := revenue.Int64(); err == nil {
		stats.Revenue = events.RevenueFromUnits(units)
	} else if !errors.Is(err, redis.Nil) {
		return nil, false, err
	}

	nameByID := names.Val()
	for _, z := range items.Val() {
		id, _ := z.Member.(string)
		if z.Score <= 0 {
			continue
		}
		stats.TopItems = append(stats.TopItems, domain.DishCount{
			MenuItemID: id,
			Name:       nameByID[id],
			Quantity:   z.Score,
		})
	}

	if counts := requests.Val(); len(counts) > 0 {
		stats.ServiceRequests = make(map[string]int64, len(counts))
		for kind, raw := range counts {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				continue
			}
			stats.ServiceRequests[kind] = n
		}
	}
	return stats, true, nil
}
