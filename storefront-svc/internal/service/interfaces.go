package service

import (
	"context"
	"time"

	"restrofi/events"
	"restrofi/storefront-svc/internal/domain"
)

type RestaurantRepository interface {
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	GetTable(ctx context.Context, restaurantID, tableID string) (*domain.Table, error)
	ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error)
}

type MenuRepository interface {
	ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuEntry, error)
	GetMenuItem(ctx context.Context, restaurantID, id string) (*domain.MenuEntry, error)
	CreateMenuItem(ctx context.Context, entry *domain.MenuEntry) error
	UpdateMenuItem(ctx context.Context, entry *domain.MenuEntry) error
	DeleteMenuItem(ctx context.Context, restaurantID, id string) (int64, error)
	ImportMenuItems(ctx context.Context, restaurantID string, entries []domain.MenuEntry, replace bool) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, restaurantID, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, restaurantID string, statuses []domain.OrderStatus, limit, offset int) ([]domain.Order, int, error)
	UpdateOrderStatus(ctx context.Context, restaurantID, id string, from, to domain.OrderStatus) error
	DailyStats(ctx context.Context, restaurantID string, from, to time.Time, topN int) (*domain.DailyStats, error)
}

type ServiceRequestRepository interface {
	CreateServiceRequest(ctx context.Context, req *domain.ServiceRequest) error
	ListPendingServiceRequests(ctx context.Context, restaurantID string) ([]domain.ServiceRequest, error)
	CompleteServiceRequest(ctx context.Context, restaurantID, id string) (int64, error)
}

type MenuCache interface {
	GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuEntry, bool, error)
	SetMenu(ctx context.Context, restaurantID string, entries []domain.MenuEntry) error
	InvalidateMenu(ctx context.Context, restaurantID string) error
}

// AttemptLimiter counts attempts per key inside a fixed window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type StatsReader interface {
	DailyStats(ctx context.Context, restaurantID, day string, topN int) (*domain.DailyStats, bool, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.OrderEvent) error
}

// ReplyGenerator produces the concierge's next message.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, history []domain.ChatMessage, message, catalogSummary string) (string, error)
}

// MenuScanner reads dishes off a photographed menu.
type MenuScanner interface {
	ScanMenu(ctx context.Context, image []byte, mimeType string) ([]domain.MenuEntry, error)
}

type QRGenerator interface {
	Generate(restaurantID, tableID string) ([]byte, error)
}
