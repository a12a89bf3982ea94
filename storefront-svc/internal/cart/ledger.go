// Package cart keeps a guest's selection and derives its totals.
//
// A Ledger is owned by a single session and is not safe for concurrent use;
// the session serialises access to it.
package cart

import (
	"restrofi/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat GST applied to every order.
var TaxRate = decimal.RequireFromString("0.05")

type Line struct {
	Entry    domain.MenuEntry `json:"item"`
	Quantity int              `json:"quantity"`
}

func (l Line) Amount() decimal.Decimal {
	return l.Entry.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type Ledger struct {
	lines []Line
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) indexOf(entryID string) int {
	for i := range l.lines {
		if l.lines[i].Entry.ID == entryID {
			return i
		}
	}
	return -1
}

// Add bumps the quantity of an existing line or appends a new one. Stock is
// not checked here.
func (l *Ledger) Add(entry domain.MenuEntry) {
	if idx := l.indexOf(entry.ID); idx >= 0 {
		l.lines[idx].Quantity++
		return
	}
	l.lines = append(l.lines, Line{Entry: entry, Quantity: 1})
}

// UpdateQuantity applies delta to the matching line and drops the line when
// the quantity falls to zero or below. It reports whether a line matched.
func (l *Ledger) UpdateQuantity(entryID string, delta int) bool {
	idx := l.indexOf(entryID)
	if idx < 0 {
		return false
	}
	next := l.lines[idx].Quantity + delta
	if next <= 0 {
		l.lines = append(l.lines[:idx], l.lines[idx+1:]...)
		return true
	}
	l.lines[idx].Quantity = next
	return true
}

// Remove drops the matching line. It reports whether a line matched.
func (l *Ledger) Remove(entryID string) bool {
	idx := l.indexOf(entryID)
	if idx < 0 {
		return false
	}
	l.lines = append(l.lines[:idx], l.lines[idx+1:]...)
	return true
}

func (l *Ledger) Clear() {
	l.lines = nil
}

func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// Lines returns the lines in insertion order as an independent copy.
func (l *Ledger) Lines() []Line {
	return append([]Line{}, l.lines...)
}

// ItemCount is the sum of all quantities.
func (l *Ledger) ItemCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Totals is recomputed on every call.
func (l *Ledger) Totals() Totals {
	subtotal := decimal.Zero
	for _, line := range l.lines {
		subtotal = subtotal.Add(line.Amount())
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

type Snapshot struct {
	Lines     []Line `json:"lines"`
	Totals    Totals `json:"totals"`
	ItemCount int    `json:"item_count"`
}

// Snapshot captures lines and totals together; later mutations of the ledger
// do not reach it.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Lines:     l.Lines(),
		Totals:    l.Totals(),
		ItemCount: l.ItemCount(),
	}
}
