package storage

import (
	"context"
	"time"

	"restrofi/events"

	"github.com/redis/go-redis/v9"
)

// Store applies order events to the per-day counters storefront-svc reads.
// Every event is applied at most once: a marker key is written in the same
// MULTI as the counters and checked before applying.
type Store struct {
	rdb *redis.Client
	loc *time.Location
	ttl time.Duration
}

func NewStore(rdb *redis.Client, loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{rdb: rdb, loc: loc, ttl: events.StatsTTL}
}

func (s *Store) MarkerKey(eventKey string) string {
	return "stats:applied:" + eventKey
}

func (s *Store) applied(ctx context.Context, eventKey string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.MarkerKey(eventKey)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) day(event events.OrderEvent) string {
	at := event.PlacedAt
	if at.IsZero() {
		at = event.Timestamp
	}
	return events.DayStamp(at, s.loc)
}

// apply runs fill inside MULTI/EXEC together with the marker write, unless
// the marker already exists.
func (s *Store) apply(ctx context.Context, eventKey string, fill func(pipe redis.Pipeliner)) error {
	if eventKey != "" {
		done, err := s.applied(ctx, eventKey)
		if err != nil || done {
			return err
		}
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		fill(pipe)
		if eventKey != "" {
			pipe.Set(ctx, s.MarkerKey(eventKey), "1", s.ttl)
		}
		return nil
	})
	return err
}

func (s *Store) RecordOrderPlaced(ctx context.Context, event events.OrderEvent) error {
	day := s.day(event)
	rid := event.RestaurantID
	return s.apply(ctx, orderKey(event, "placed"), func(pipe redis.Pipeliner) {
		s.addOrder(ctx, pipe, day, rid, event, 1)
	})
}

// RecordStatusChange only moves counters when an order becomes CANCELLED;
// cancelled orders are excluded from revenue and top items.
func (s *Store) RecordStatusChange(ctx context.Context, event events.OrderEvent) error {
	if event.Status != "CANCELLED" || event.PreviousStatus == "CANCELLED" {
		return nil
	}
	day := s.day(event)
	rid := event.RestaurantID
	return s.apply(ctx, orderKey(event, "cancelled"), func(pipe redis.Pipeliner) {
		s.addOrder(ctx, pipe, day, rid, event, -1)
	})
}

func (s *Store) RecordServiceRequest(ctx context.Context, event events.OrderEvent) error {
	key := events.DailyServiceKey(s.day(event), event.RestaurantID)
	var eventKey string
	if event.RequestID != "" {
		eventKey = "service:" + event.RequestID
	}
	return s.apply(ctx, eventKey, func(pipe redis.Pipeliner) {
		pipe.HIncrBy(ctx, key, event.ServiceType, 1)
		pipe.Expire(ctx, key, s.ttl)
	})
}

func (s *Store) addOrder(ctx context.Context, pipe redis.Pipeliner, day, rid string, event events.OrderEvent, sign int64) {
	revenueKey := events.DailyRevenueKey(day, rid)
	ordersKey := events.DailyOrdersKey(day, rid)
	itemsKey := events.DailyItemsKey(day, rid)
	namesKey := events.DailyItemNamesKey(day, rid)

	pipe.IncrBy(ctx, revenueKey, sign*events.RevenueUnits(event.Total))
	pipe.IncrBy(ctx, ordersKey, sign)
	for _, item := range event.Items {
		pipe.ZIncrBy(ctx, itemsKey, float64(sign*int64(item.Quantity)), item.MenuItemID)
		if sign > 0 {
			pipe.HSet(ctx, namesKey, item.MenuItemID, item.Name)
		}
	}
	for _, key := range []string{revenueKey, ordersKey, itemsKey, namesKey} {
		pipe.Expire(ctx, key, s.ttl)
	}
}

func orderKey(event events.OrderEvent, what string) string {
	if event.OrderID == "" {
		return ""
	}
	return "order:" + event.OrderID + ":" + what
}
