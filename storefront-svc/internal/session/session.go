// Package session holds per-guest state: the catalog the guest browses, the
// cart, the filter, the staff gate and the concierge transcript.
package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"restrofi/storefront-svc/internal/cart"
	"restrofi/storefront-svc/internal/domain"
	"restrofi/storefront-svc/internal/menu"
	"restrofi/storefront-svc/internal/pin"
)

var (
	ErrUnknownEntry     = errors.New("menu entry not in this restaurant's catalog")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrSubmitInFlight   = errors.New("order submission already in progress")
	ErrReplyPending     = errors.New("concierge reply already pending")
	ErrEmptyChatMessage = errors.New("chat message is empty")
)

type Params struct {
	ID           string
	RestaurantID string
	TableID      string
	TableNumber  int
	Catalog      *menu.Catalog
	Gate         *pin.Gate
	Greeting     string
	Now          time.Time
}

type Session struct {
	ID           string
	RestaurantID string
	TableID      string
	TableNumber  int
	CreatedAt    time.Time

	mu         sync.Mutex
	catalog    *menu.Catalog
	ledger     *cart.Ledger
	filter     menu.FilterState
	gate       *pin.Gate
	transcript []domain.ChatMessage
	lastSeen   time.Time

	submitting    atomic.Bool
	awaitingReply atomic.Bool
}

func New(p Params) *Session {
	s := &Session{
		ID:           p.ID,
		RestaurantID: p.RestaurantID,
		TableID:      p.TableID,
		TableNumber:  p.TableNumber,
		CreatedAt:    p.Now,
		catalog:      p.Catalog,
		ledger:       cart.NewLedger(),
		filter:       menu.DefaultFilter(),
		gate:         p.Gate,
		lastSeen:     p.Now,
	}
	if s.catalog == nil {
		s.catalog = menu.NewCatalog(p.RestaurantID, nil)
	}
	if p.Greeting != "" {
		s.transcript = append(s.transcript, domain.ChatMessage{Role: domain.RoleAssistant, Text: p.Greeting})
	}
	return s
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Busy reports whether an external call is in flight for this session.
func (s *Session) Busy() bool {
	return s.submitting.Load() || s.awaitingReply.Load()
}

func (s *Session) Catalog() *menu.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// ReplaceCatalog swaps in a fresh catalog. Cart lines keep the entry they were
// added with.
func (s *Session) ReplaceCatalog(c *menu.Catalog) {
	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()
}

func (s *Session) Filter() menu.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Session) SetFilter(f menu.FilterState) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

func (s *Session) ToggleDietaryTag(tag string) menu.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = s.filter.ToggleTag(tag)
	return s.filter
}

// VisibleItems applies the session's filter to its catalog.
func (s *Session) VisibleItems() []domain.MenuEntry {
	s.mu.Lock()
	entries, f := s.catalog.Entries(), s.filter
	s.mu.Unlock()
	return menu.VisibleItems(entries, f)
}

func (s *Session) Cart() cart.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot()
}

func (s *Session) AddToCart(entryID string) (cart.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.catalog.Lookup(entryID)
	if !ok {
		return s.ledger.Snapshot(), ErrUnknownEntry
	}
	s.ledger.Add(entry)
	return s.ledger.Snapshot(), nil
}

func (s *Session) UpdateQuantity(entryID string, delta int) (cart.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.ledger.UpdateQuantity(entryID, delta)
	return s.ledger.Snapshot(), changed
}

func (s *Session) RemoveFromCart(entryID string) (cart.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.ledger.Remove(entryID)
	return s.ledger.Snapshot(), changed
}

// BeginSubmit claims the single submission slot and returns the snapshot to
// send. Every successful call must be paired with FinishSubmit.
func (s *Session) BeginSubmit() (cart.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger.IsEmpty() {
		return cart.Snapshot{}, ErrEmptyCart
	}
	if !s.submitting.CompareAndSwap(false, true) {
		return cart.Snapshot{}, ErrSubmitInFlight
	}
	return s.ledger.Snapshot(), nil
}

// FinishSubmit releases the submission slot, clearing the cart when the order
// was accepted.
func (s *Session) FinishSubmit(accepted bool) {
	s.mu.Lock()
	if accepted {
		s.ledger.Clear()
	}
	s.mu.Unlock()
	s.submitting.Store(false)
}

func (s *Session) Submitting() bool {
	return s.submitting.Load()
}

// BeginChat appends the guest's message and claims the reply slot. It returns
// the transcript as it was before the message.
func (s *Session) BeginChat(text string) ([]domain.ChatMessage, error) {
	if text == "" {
		return nil, ErrEmptyChatMessage
	}
	if !s.awaitingReply.CompareAndSwap(false, true) {
		return nil, ErrReplyPending
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	history := append([]domain.ChatMessage{}, s.transcript...)
	s.transcript = append(s.transcript, domain.ChatMessage{Role: domain.RoleUser, Text: text})
	return history, nil
}

// FinishChat releases the reply slot and appends reply when non-empty.
func (s *Session) FinishChat(reply string) {
	s.mu.Lock()
	if reply != "" {
		s.transcript = append(s.transcript, domain.ChatMessage{Role: domain.RoleAssistant, Text: reply})
	}
	s.mu.Unlock()
	s.awaitingReply.Store(false)
}

func (s *Session) AwaitingReply() bool {
	return s.awaitingReply.Load()
}

func (s *Session) Transcript() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ChatMessage{}, s.transcript...)
}

func (s *Session) OpenGate() pin.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate.Open()
	return s.gate.View()
}

func (s *Session) GateView() pin.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.View()
}

// EnterPin feeds one digit to the gate. A negative position means "at the
// cursor".
func (s *Session) EnterPin(ctx context.Context, position int, digit string) (pin.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if position < 0 {
		return s.gate.Press(ctx, digit)
	}
	return s.gate.Enter(ctx, position, digit)
}

func (s *Session) PinBackspace(position int) (pin.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.Backspace(position)
}
