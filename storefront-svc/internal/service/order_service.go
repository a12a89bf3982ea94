package service

import (
	"context"
	"errors"
	"time"

	"restrofi/events"
	"restrofi/logger"
	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/cart"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/metrics"
	"restrofi/storefront-svc/internal/session"

	"github.com/google/uuid"
)

type OrderSubmitterInterface interface {
	Submit(ctx context.Context, sess *session.Session, notes string) (*domain.Order, error)
}

// OrderSubmitter turns a session's cart into a persisted order. At most one
// submission per session is in flight.
type OrderSubmitter struct {
	repository OrderRepository
	publisher  EventPublisher
	timeout    time.Duration
	metrics    *metrics.Storefront
	log        *logger.Logger
	now        func() time.Time
}

var _ OrderSubmitterInterface = (*OrderSubmitter)(nil)

func NewOrderSubmitter(repository OrderRepository, publisher EventPublisher, timeout time.Duration, m *metrics.Storefront, log *logger.Logger) *OrderSubmitter {
	return &OrderSubmitter{
		repository: repository,
		publisher:  publisher,
		timeout:    timeout,
		metrics:    m,
		log:        log,
		now:        time.Now,
	}
}

// Submit sends the cart as it is at call time. The cart is cleared only when
// the order was stored; any failure leaves it untouched.
func (s *OrderSubmitter) Submit(ctx context.Context, sess *session.Session, notes string) (*domain.Order, error) {
	ctx = s.log.WithSessionID(ctx, sess.ID)

	snap, err := sess.BeginSubmit()
	switch {
	case errors.Is(err, session.ErrEmptyCart):
		s.metrics.OrderSubmitted("rejected")
		return nil, apperr.Wrap(apperr.CodeValidation, err, "cart is empty")
	case errors.Is(err, session.ErrSubmitInFlight):
		s.metrics.OrderSubmitted("rejected")
		return nil, apperr.Wrap(apperr.CodeConflict, err, "order submission already in progress")
	case err != nil:
		return nil, err
	}

	order := orderFromSnapshot(sess, snap, notes, s.now())

	callCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	started := time.Now()
	err = s.repository.CreateOrder(callCtx, order)
	s.metrics.ObserveCall("create_order", time.Since(started))
	if err != nil {
		sess.FinishSubmit(false)
		s.metrics.OrderSubmitted("failed")
		s.log.Error(ctx, "order submission failed", err)
		return nil, externalError(err, "create order")
	}
	sess.FinishSubmit(true)
	s.metrics.OrderSubmitted("success")

	s.publish(ctx, order)
	s.log.Info(s.log.WithField(ctx, "order_id", order.ID), "order placed")
	return order, nil
}

func (s *OrderSubmitter) publish(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := events.OrderEvent{
		Type:         events.TypeOrderPlaced,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		TableID:      order.TableID,
		Status:       string(order.Status),
		Total:        order.Total,
		Items:        eventItems(order.Items),
		PlacedAt:     order.CreatedAt,
		Timestamp:    order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn(ctx, "order event publish failed", err)
	}
}

func eventItems(items []domain.OrderItem) []events.ItemCount {
	out := make([]events.ItemCount, 0, len(items))
	for _, item := range items {
		out = append(out, events.ItemCount{MenuItemID: item.MenuItemID, Name: item.Name, Quantity: item.Quantity})
	}
	return out
}

func orderFromSnapshot(sess *session.Session, snap cart.Snapshot, notes string, now time.Time) *domain.Order {
	items := make([]domain.OrderItem, 0, len(snap.Lines))
	for _, line := range snap.Lines {
		items = append(items, domain.OrderItem{
			MenuItemID: line.Entry.ID,
			Name:       line.Entry.Name,
			Quantity:   line.Quantity,
			Price:      line.Entry.Price,
		})
	}
	return &domain.Order{
		ID:           uuid.NewString(),
		RestaurantID: sess.RestaurantID,
		TableID:      sess.TableID,
		TableNumber:  sess.TableNumber,
		Items:        items,
		Status:       domain.OrderPending,
		Total:        snap.Totals.Total,
		Notes:        notes,
		CreatedAt:    now,
	}
}
