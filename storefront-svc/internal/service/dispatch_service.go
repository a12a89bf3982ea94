package service

import (
	"context"
	"time"

	"restrofi/events"
	"restrofi/logger"
	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/metrics"
	"restrofi/storefront-svc/internal/session"

	"github.com/google/uuid"
)

type ServiceDispatcherInterface interface {
	Request(ctx context.Context, sess *session.Session, kind domain.ServiceType) (*domain.ServiceRequest, error)
}

// ServiceDispatcher forwards a table's call for water, the bill, a server or
// cleaning.
type ServiceDispatcher struct {
	repository ServiceRequestRepository
	publisher  EventPublisher
	timeout    time.Duration
	metrics    *metrics.Storefront
	log        *logger.Logger
	now        func() time.Time
}

var _ ServiceDispatcherInterface = (*ServiceDispatcher)(nil)

func NewServiceDispatcher(repository ServiceRequestRepository, publisher EventPublisher, timeout time.Duration, m *metrics.Storefront, log *logger.Logger) *ServiceDispatcher {
	return &ServiceDispatcher{
		repository: repository,
		publisher:  publisher,
		timeout:    timeout,
		metrics:    m,
		log:        log,
		now:        time.Now,
	}
}

func (d *ServiceDispatcher) Request(ctx context.Context, sess *session.Session, kind domain.ServiceType) (*domain.ServiceRequest, error) {
	if !kind.Valid() {
		return nil, apperr.New(apperr.CodeValidation, "unknown service type").
			WithDetails(map[string]string{"type": string(kind)})
	}
	req := &domain.ServiceRequest{
		ID:           uuid.NewString(),
		RestaurantID: sess.RestaurantID,
		TableID:      sess.TableID,
		TableNumber:  sess.TableNumber,
		Type:         kind,
		Status:       domain.ServiceRequestPending,
		CreatedAt:    d.now(),
	}

	callCtx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()
	if err := d.repository.CreateServiceRequest(callCtx, req); err != nil {
		d.log.Error(d.log.WithSessionID(ctx, sess.ID), "service request failed", err)
		return nil, externalError(err, "create service request")
	}
	d.metrics.ServiceRequested(string(kind))

	if d.publisher != nil {
		event := events.OrderEvent{
			Type:         events.TypeServiceRequested,
			RequestID:    req.ID,
			RestaurantID: req.RestaurantID,
			TableID:      req.TableID,
			ServiceType:  string(req.Type),
			Timestamp:    req.CreatedAt,
		}
		if err := d.publisher.Publish(ctx, event); err != nil {
			d.log.Warn(ctx, "service request event publish failed", err)
		}
	}
	return req, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
