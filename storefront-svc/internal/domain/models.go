package domain

import (
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

// ErrStatusChanged is returned when an order no longer has the status a
// transition was checked against.
var ErrStatusChanged = errors.New("order status changed")

type Restaurant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

type Table struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Number       int    `json:"table_number"`
}

// MenuEntry is one sellable item. Entries are loaded once per session and
// never mutated afterwards.
type MenuEntry struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"image_url,omitempty"`
	DietaryTags  []string        `json:"dietary"`
	Popular      bool            `json:"is_popular"`
	InStock      bool            `json:"in_stock"`
}

func (e MenuEntry) HasTag(tag string) bool {
	return slices.Contains(e.DietaryTags, tag)
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderServed    OrderStatus = "SERVED"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
)

// ActiveOrderStatuses are the statuses shown on the staff console.
var ActiveOrderStatuses = []OrderStatus{OrderPending, OrderPreparing, OrderReady, OrderServed, OrderPaid}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderServed, OrderCancelled},
	OrderServed:    {OrderPaid, OrderCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderServed, OrderPaid, OrderCancelled:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

type Order struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	TableID      string          `json:"table_id"`
	TableNumber  int             `json:"table_number,omitempty"`
	Items        []OrderItem     `json:"items"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total_amount"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type OrderItem struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type ServiceType string

const (
	ServiceWater  ServiceType = "WATER"
	ServiceBill   ServiceType = "BILL"
	ServiceServer ServiceType = "SERVER"
	ServiceClean  ServiceType = "CLEAN"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceWater, ServiceBill, ServiceServer, ServiceClean:
		return true
	}
	return false
}

type ServiceRequestStatus string

const (
	ServiceRequestPending   ServiceRequestStatus = "PENDING"
	ServiceRequestCompleted ServiceRequestStatus = "COMPLETED"
)

type ServiceRequest struct {
	ID           string               `json:"id"`
	RestaurantID string               `json:"restaurant_id"`
	TableID      string               `json:"table_id"`
	TableNumber  int                  `json:"table_number,omitempty"`
	Type         ServiceType          `json:"type"`
	Status       ServiceRequestStatus `json:"status"`
	CreatedAt    time.Time            `json:"created_at"`
}

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

type DishCount struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
}

type DailyStats struct {
	Day             string           `json:"day"`
	Revenue         decimal.Decimal  `json:"revenue"`
	OrderCount      int64            `json:"order_count"`
	TopItems        []DishCount      `json:"top_items"`
	ServiceRequests map[string]int64 `json:"service_requests,omitempty"`
}

// OrderPage is one page of the staff order list.
type OrderPage struct {
	Orders   []Order `json:"orders"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
	Total    int     `json:"total"`
}
