// Package events holds the Kafka payloads exchanged between storefront-svc and
// agg-svc, and the Redis keys the aggregated daily stats live under.
package events

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeOrderPlaced        = "order_placed"
	TypeOrderStatusChanged = "order_status_changed"
	TypeServiceRequested   = "service_requested"
)

// OrderEvent is the single payload type on the orders topic. PlacedAt is the
// order's creation time, so a later status change is counted against the day
// the order was placed.
type OrderEvent struct {
	Type           string          `json:"type"`
	OrderID        string          `json:"order_id,omitempty"`
	RequestID      string          `json:"request_id,omitempty"`
	RestaurantID   string          `json:"restaurant_id"`
	TableID        string          `json:"table_id,omitempty"`
	Status         string          `json:"status,omitempty"`
	PreviousStatus string          `json:"previous_status,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Items          []ItemCount     `json:"items,omitempty"`
	ServiceType    string          `json:"service_type,omitempty"`
	PlacedAt       time.Time       `json:"placed_at,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

type ItemCount struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// Key returns the partition key so every event of one restaurant stays ordered.
func (e OrderEvent) Key() []byte {
	return []byte(e.RestaurantID)
}

func DayStamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

func DailyRevenueKey(day, restaurantID string) string {
	return fmt.Sprintf("stats:daily:%s:%s:revenue", day, restaurantID)
}

func DailyOrdersKey(day, restaurantID string) string {
	return fmt.Sprintf("stats:daily:%s:%s:orders", day, restaurantID)
}

func DailyItemsKey(day, restaurantID string) string {
	return fmt.Sprintf("stats:daily:%s:%s:items", day, restaurantID)
}

// DailyItemNamesKey maps menu item ids in the items sorted set to display names.
func DailyItemNamesKey(day, restaurantID string) string {
	return fmt.Sprintf("stats:daily:%s:%s:item_names", day, restaurantID)
}

func DailyServiceKey(day, restaurantID string) string {
	return fmt.Sprintf("stats:daily:%s:%s:service", day, restaurantID)
}

// Revenue is kept in Redis as an integer count of thousandths so INCRBY
// stays exact; GST on a two-decimal price needs three places.
const revenueExp = -3

func RevenueUnits(amount decimal.Decimal) int64 {
	return amount.Shift(-revenueExp).Round(0).IntPart()
}

func RevenueFromUnits(units int64) decimal.Decimal {
	return decimal.New(units, revenueExp)
}

// StatsTTL bounds how long a day's counters are kept around.
const StatsTTL = 7 * 24 * time.Hour
