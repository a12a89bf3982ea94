package service

import (
	"context"
	"errors"
	"time"

	"restrofi/events"
	"restrofi/logger"
	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	topItemsLimit   = 5
)

type StaffServiceInterface interface {
	ListActiveOrders(ctx context.Context, restaurantID string, page, pageSize int) (*domain.OrderPage, error)
	GetOrder(ctx context.Context, restaurantID, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, restaurantID, id string, status domain.OrderStatus) (*domain.Order, error)
	ListPendingRequests(ctx context.Context, restaurantID string) ([]domain.ServiceRequest, error)
	CompleteRequest(ctx context.Context, restaurantID, id string) error
	TodayStats(ctx context.Context, restaurantID string) (*domain.DailyStats, error)
	TableQRCode(ctx context.Context, restaurantID, tableID string) ([]byte, error)
	ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error)
}

// StaffService backs the console unlocked by the staff gate.
type StaffService struct {
	orders      OrderRepository
	requests    ServiceRequestRepository
	restaurants RestaurantRepository
	stats       StatsReader
	publisher   EventPublisher
	qr          QRGenerator
	loc         *time.Location
	log         *logger.Logger
	now         func() time.Time
}

var _ StaffServiceInterface = (*StaffService)(nil)

func NewStaffService(
	orders OrderRepository,
	requests ServiceRequestRepository,
	restaurants RestaurantRepository,
	stats StatsReader,
	publisher EventPublisher,
	qr QRGenerator,
	loc *time.Location,
	log *logger.Logger,
) *StaffService {
	if loc == nil {
		loc = time.UTC
	}
	return &StaffService{
		orders:      orders,
		requests:    requests,
		restaurants: restaurants,
		stats:       stats,
		publisher:   publisher,
		qr:          qr,
		loc:         loc,
		log:         log,
		now:         time.Now,
	}
}

// ListActiveOrders pages through non-cancelled orders, newest first. Page
// numbers start at 1.
func (s *StaffService) ListActiveOrders(ctx context.Context, restaurantID string, page, pageSize int) (*domain.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	orders, total, err := s.orders.ListOrders(ctx, restaurantID, domain.ActiveOrderStatuses, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, externalError(err, "list orders")
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return &domain.OrderPage{Orders: orders, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *StaffService) GetOrder(ctx context.Context, restaurantID, id string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, restaurantID, id)
	if err != nil {
		return nil, lookupError(err, "order")
	}
	return order, nil
}

func (s *StaffService) UpdateOrderStatus(ctx context.Context, restaurantID, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, apperr.New(apperr.CodeValidation, "unknown order status").
			WithDetails(map[string]string{"status": string(status)})
	}
	order, err := s.GetOrder(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, apperr.New(apperr.CodeValidation, "status transition not allowed").
			WithDetails(map[string]string{"from": string(order.Status), "to": string(status)})
	}
	if err := s.orders.UpdateOrderStatus(ctx, restaurantID, id, order.Status, status); err != nil {
		if errors.Is(err, domain.ErrStatusChanged) {
			return nil, apperr.Wrap(apperr.CodeConflict, err, "order status changed, reload and retry")
		}
		return nil, lookupError(err, "order")
	}

	previous := order.Status
	order.Status = status
	if s.publisher != nil {
		event := events.OrderEvent{
			Type:           events.TypeOrderStatusChanged,
			OrderID:        order.ID,
			RestaurantID:   order.RestaurantID,
			TableID:        order.TableID,
			Status:         string(status),
			PreviousStatus: string(previous),
			Total:          order.Total,
			Items:          eventItems(order.Items),
			PlacedAt:       order.CreatedAt,
			Timestamp:      s.now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.log.Warn(ctx, "order status event publish failed", err)
		}
	}
	return order, nil
}

func (s *StaffService) ListPendingRequests(ctx context.Context, restaurantID string) ([]domain.ServiceRequest, error) {
	reqs, err := s.requests.ListPendingServiceRequests(ctx, restaurantID)
	if err != nil {
		return nil, externalError(err, "list service requests")
	}
	if reqs == nil {
		reqs = []domain.ServiceRequest{}
	}
	return reqs, nil
}

func (s *StaffService) CompleteRequest(ctx context.Context, restaurantID, id string) error {
	rows, err := s.requests.CompleteServiceRequest(ctx, restaurantID, id)
	if err != nil {
		return externalError(err, "complete service request")
	}
	if rows == 0 {
		return apperr.New(apperr.CodeNotFound, "service request not found")
	}
	return nil
}

// TodayStats reads the counters agg-svc maintains and falls back to querying
// orders directly when they are missing.
func (s *StaffService) TodayStats(ctx context.Context, restaurantID string) (*domain.DailyStats, error) {
	now := s.now().In(s.loc)
	day := events.DayStamp(now, s.loc)

	if s.stats != nil {
		stats, ok, err := s.stats.DailyStats(ctx, restaurantID, day, topItemsLimit)
		if err != nil {
			s.log.Warn(ctx, "stats cache read failed", err)
		}
		if ok {
			return stats, nil
		}
	}

	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	stats, err := s.orders.DailyStats(ctx, restaurantID, from, from.AddDate(0, 0, 1), topItemsLimit)
	if err != nil {
		return nil, externalError(err, "load stats")
	}
	stats.Day = day
	return stats, nil
}

func (s *StaffService) ListTables(ctx context.Context, restaurantID string) ([]domain.Table, error) {
	tables, err := s.restaurants.ListTables(ctx, restaurantID)
	if err != nil {
		return nil, externalError(err, "list tables")
	}
	if tables == nil {
		tables = []domain.Table{}
	}
	return tables, nil
}

func (s *StaffService) TableQRCode(ctx context.Context, restaurantID, tableID string) ([]byte, error) {
	if _, err := s.restaurants.GetTable(ctx, restaurantID, tableID); err != nil {
		return nil, lookupError(err, "table")
	}
	png, err := s.qr.Generate(restaurantID, tableID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, err, "generate qr code")
	}
	return png, nil
}
