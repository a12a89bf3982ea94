package service

import (
	"context"
	"errors"
	"time"

	"restrofi/logger"
	"restrofi/storefront-svc/internal/apperr"
	"restrofi/storefront-svc/internal/cart"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/menu"
	"restrofi/storefront-svc/internal/metrics"
	"restrofi/storefront-svc/internal/pin"
	"restrofi/storefront-svc/internal/session"

	"github.com/google/uuid"
)

const DefaultGreeting = "Bonjour. I am Chef Aurelius, your digital concierge. I can recommend pairings or detail our ingredients. How may I be of service?"

type SessionConfig struct {
	PinResetDelay time.Duration
	IdleTTL       time.Duration
	SweepInterval time.Duration
	Greeting      string
}

// PinResult is the gate state after an input, plus a staff token once the
// gate authorizes.
type PinResult struct {
	Gate      pin.View   `json:"gate"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type SessionServiceInterface interface {
	Restaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	Open(ctx context.Context, restaurantID, tableID string) (*session.Session, error)
	Get(id string) (*session.Session, error)
	Close(id string)
	RefreshCatalog(ctx context.Context, id string) (*menu.Catalog, error)
	SetFilter(id string, f menu.FilterState) (menu.FilterState, error)
	AddToCart(id, entryID string) (cart.Snapshot, error)
	UpdateQuantity(id, entryID string, delta int) (cart.Snapshot, bool, error)
	RemoveFromCart(id, entryID string) (cart.Snapshot, bool, error)
	OpenGate(id string) (pin.View, error)
	EnterPin(ctx context.Context, id string, position int, digit string) (PinResult, error)
	PinBackspace(id string, position int) (pin.View, error)
}

// SessionService opens guest sessions for a table and runs the per-session
// operations that need no external call.
type SessionService struct {
	store       *session.Store
	restaurants RestaurantRepository
	menus       MenuServiceInterface
	verifier    pin.Verifier
	limiter     AttemptLimiter
	tokens      *StaffTokens
	metrics     *metrics.Storefront
	log         *logger.Logger
	cfg         SessionConfig
	now         func() time.Time
}

var _ SessionServiceInterface = (*SessionService)(nil)

func NewSessionService(
	store *session.Store,
	restaurants RestaurantRepository,
	menus MenuServiceInterface,
	verifier pin.Verifier,
	limiter AttemptLimiter,
	tokens *StaffTokens,
	m *metrics.Storefront,
	log *logger.Logger,
	cfg SessionConfig,
) *SessionService {
	if cfg.Greeting == "" {
		cfg.Greeting = DefaultGreeting
	}
	return &SessionService{
		store:       store,
		restaurants: restaurants,
		menus:       menus,
		verifier:    verifier,
		limiter:     limiter,
		tokens:      tokens,
		metrics:     m,
		log:         log,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *SessionService) Open(ctx context.Context, restaurantID, tableID string) (*session.Session, error) {
	if _, err := s.restaurants.GetRestaurant(ctx, restaurantID); err != nil {
		return nil, lookupError(err, "restaurant")
	}
	table, err := s.restaurants.GetTable(ctx, restaurantID, tableID)
	if err != nil {
		return nil, lookupError(err, "table")
	}
	catalog, err := s.menus.Catalog(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	sess := session.New(session.Params{
		ID:           id,
		RestaurantID: restaurantID,
		TableID:      table.ID,
		TableNumber:  table.Number,
		Catalog:      catalog,
		Gate: pin.NewGate(pin.Options{
			Verifier:   s.verifier,
			ResetDelay: s.cfg.PinResetDelay,
			Guard:      s.attemptGuard(restaurantID, id),
			Now:        s.now,
		}),
		Greeting: s.cfg.Greeting,
		Now:      s.now(),
	})
	s.store.Put(sess)
	s.log.Info(s.log.WithSessionID(ctx, id), "session opened")
	return sess, nil
}

// Restaurant is the public profile shown on the guest landing page.
func (s *SessionService) Restaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	rest, err := s.restaurants.GetRestaurant(ctx, id)
	if err != nil {
		return nil, lookupError(err, "restaurant")
	}
	return rest, nil
}

type clientKey struct{}

// WithClient tags ctx with the caller's address. PIN attempts are counted per
// restaurant and caller, so opening a new session does not reset the count.
func WithClient(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, clientKey{}, addr)
}

func ClientFrom(ctx context.Context) string {
	if addr, _ := ctx.Value(clientKey{}).(string); addr != "" {
		return addr
	}
	return "unknown"
}

func (s *SessionService) attemptGuard(restaurantID, sessionID string) pin.Guard {
	if s.limiter == nil {
		return nil
	}
	return func(ctx context.Context) error {
		keys := []string{
			"pin:" + restaurantID + ":" + ClientFrom(ctx),
			"pin:" + sessionID,
		}
		for _, key := range keys {
			ok, err := s.limiter.Allow(ctx, key)
			if err != nil {
				s.log.Warn(ctx, "pin attempt limiter unavailable", err)
				return nil
			}
			if !ok {
				s.metrics.PinAttempt("rate_limited")
				return apperr.New(apperr.CodeRateLimit, "too many pin attempts")
			}
		}
		return nil
	}
}

// Get returns a live session and marks it as seen.
func (s *SessionService) Get(id string) (*session.Session, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "session not found")
	}
	sess.Touch(s.now())
	return sess, nil
}

func (s *SessionService) Close(id string) {
	s.store.Delete(id)
}

// RefreshCatalog reloads the session's catalog, e.g. after staff edits.
func (s *SessionService) RefreshCatalog(ctx context.Context, id string) (*menu.Catalog, error) {
	sess, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	catalog, err := s.menus.Catalog(ctx, sess.RestaurantID)
	if err != nil {
		return nil, err
	}
	sess.ReplaceCatalog(catalog)
	return catalog, nil
}

func (s *SessionService) SetFilter(id string, f menu.FilterState) (menu.FilterState, error) {
	sess, err := s.Get(id)
	if err != nil {
		return menu.FilterState{}, err
	}
	if f.Category == "" {
		f.Category = menu.AllCategories
	}
	sess.SetFilter(f)
	return f, nil
}

func (s *SessionService) AddToCart(id, entryID string) (cart.Snapshot, error) {
	sess, err := s.Get(id)
	if err != nil {
		return cart.Snapshot{}, err
	}
	snap, err := sess.AddToCart(entryID)
	if errors.Is(err, session.ErrUnknownEntry) {
		return snap, apperr.Wrap(apperr.CodeNotFound, err, "menu item not found")
	}
	return snap, err
}

func (s *SessionService) UpdateQuantity(id, entryID string, delta int) (cart.Snapshot, bool, error) {
	sess, err := s.Get(id)
	if err != nil {
		return cart.Snapshot{}, false, err
	}
	snap, changed := sess.UpdateQuantity(entryID, delta)
	return snap, changed, nil
}

func (s *SessionService) RemoveFromCart(id, entryID string) (cart.Snapshot, bool, error) {
	sess, err := s.Get(id)
	if err != nil {
		return cart.Snapshot{}, false, err
	}
	snap, changed := sess.RemoveFromCart(entryID)
	return snap, changed, nil
}

func (s *SessionService) OpenGate(id string) (pin.View, error) {
	sess, err := s.Get(id)
	if err != nil {
		return pin.View{}, err
	}
	return sess.OpenGate(), nil
}

// EnterPin feeds one digit to the session's gate. position < 0 enters at the
// cursor.
func (s *SessionService) EnterPin(ctx context.Context, id string, position int, digit string) (PinResult, error) {
	sess, err := s.Get(id)
	if err != nil {
		return PinResult{}, err
	}
	ctx = s.log.WithSessionID(ctx, id)

	before := sess.GateView().State
	view, err := sess.EnterPin(ctx, position, digit)
	result := PinResult{Gate: view}
	switch {
	case errors.Is(err, pin.ErrInvalidDigit), errors.Is(err, pin.ErrInvalidPosition):
		return result, apperr.Wrap(apperr.CodeValidation, err, err.Error())
	case err != nil && apperr.As(err) != nil:
		return result, err
	case err != nil:
		s.metrics.PinAttempt("error")
		return result, externalError(err, "verify pin")
	}

	switch {
	case view.State == pin.StateAuthorized && before != pin.StateAuthorized:
		s.metrics.PinAttempt("authorized")
		token, expires, err := s.tokens.Issue(sess.RestaurantID, sess.ID)
		if err != nil {
			return result, apperr.Wrap(apperr.CodeInternal, err, "issue staff token")
		}
		result.Token = token
		result.ExpiresAt = &expires
		s.log.Info(ctx, "staff gate authorized")
	case view.State == pin.StateError:
		s.metrics.PinAttempt("mismatch")
		s.log.Info(ctx, "staff gate mismatch")
	}
	return result, nil
}

func (s *SessionService) PinBackspace(id string, position int) (pin.View, error) {
	sess, err := s.Get(id)
	if err != nil {
		return pin.View{}, err
	}
	view, err := sess.PinBackspace(position)
	if err != nil {
		return view, apperr.Wrap(apperr.CodeValidation, err, err.Error())
	}
	return view, nil
}

// RunSweeper drops idle sessions until ctx is done.
func (s *SessionService) RunSweeper(ctx context.Context) error {
	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.Info(s.log.WithField(ctx, "removed", n), "idle sessions swept")
			}
		}
	}
}

func (s *SessionService) Sweep() int {
	return s.store.Sweep(s.now(), s.cfg.IdleTTL)
}
