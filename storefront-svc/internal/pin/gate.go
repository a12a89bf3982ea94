// Package pin implements the four-slot code entry that unlocks the staff
// console.
package pin

import (
	"context"
	"errors"
	"strings"
	"time"
)

const Length = 4

type State string

const (
	StateCollecting State = "COLLECTING"
	StateError      State = "ERROR"
	StateAuthorized State = "AUTHORIZED"
)

var (
	ErrInvalidDigit    = errors.New("pin input must be a single decimal digit")
	ErrInvalidPosition = errors.New("pin position out of range")
)

// Verifier checks a complete code against the configured one.
type Verifier interface {
	VerifyPin(ctx context.Context, code string) (bool, error)
}

// Guard runs before each verification. A non-nil error aborts the attempt and
// leaves the gate as it was before the input.
type Guard func(ctx context.Context) error

type Options struct {
	Verifier   Verifier
	ResetDelay time.Duration
	Guard      Guard
	Now        func() time.Time
}

// View is what the client renders. Entered digits are never echoed back.
type View struct {
	State  State  `json:"state"`
	Cursor int    `json:"cursor"`
	Filled []bool `json:"filled"`
}

// Gate is not safe for concurrent use; the owning session serialises calls.
type Gate struct {
	verifier   Verifier
	guard      Guard
	resetDelay time.Duration
	now        func() time.Time

	buffer  [Length]string
	cursor  int
	state   State
	errorAt time.Time
}

func NewGate(opts Options) *Gate {
	g := &Gate{
		verifier:   opts.Verifier,
		guard:      opts.Guard,
		resetDelay: opts.ResetDelay,
		now:        opts.Now,
	}
	if g.now == nil {
		g.now = time.Now
	}
	g.Open()
	return g
}

// Open puts the gate back to an empty buffer with the cursor on the first slot.
func (g *Gate) Open() {
	g.buffer = [Length]string{}
	g.cursor = 0
	g.state = StateCollecting
	g.errorAt = time.Time{}
}

// settle finishes a pending error display once the reset delay has passed.
func (g *Gate) settle() {
	if g.state == StateError && !g.now().Before(g.errorAt.Add(g.resetDelay)) {
		g.Open()
	}
}

// Press enters digit at the cursor. Input during the error display starts a
// fresh attempt.
func (g *Gate) Press(ctx context.Context, digit string) (View, error) {
	if g.state == StateError {
		g.Open()
	}
	return g.Enter(ctx, g.cursor, digit)
}

// Enter stores digit at position and, when the last slot is filled, checks the
// whole buffer. A mismatch moves the gate to ERROR; the buffer is cleared once
// the reset delay passes or on the next input, whichever comes first.
func (g *Gate) Enter(ctx context.Context, position int, digit string) (View, error) {
	g.settle()
	if position < 0 || position >= Length {
		return g.view(), ErrInvalidPosition
	}
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return g.view(), ErrInvalidDigit
	}
	if g.state == StateAuthorized {
		return g.view(), nil
	}
	if g.state == StateError {
		g.Open()
	}

	prevBuffer, prevCursor := g.buffer, g.cursor
	g.buffer[position] = digit
	if position < Length-1 {
		g.cursor = position + 1
		return g.view(), nil
	}
	g.cursor = position

	if g.guard != nil {
		if err := g.guard(ctx); err != nil {
			g.buffer, g.cursor = prevBuffer, prevCursor
			return g.view(), err
		}
	}

	code := strings.Join(g.buffer[:], "")
	if len(code) < Length {
		g.fail()
		return g.view(), nil
	}

	ok, err := g.verifier.VerifyPin(ctx, code)
	if err != nil {
		g.Open()
		return g.view(), err
	}
	if !ok {
		g.fail()
		return g.view(), nil
	}
	g.state = StateAuthorized
	return g.view(), nil
}

func (g *Gate) fail() {
	g.state = StateError
	g.errorAt = g.now()
}

// Backspace clears a populated slot in place. On an empty slot it only moves
// the cursor back one position.
func (g *Gate) Backspace(position int) (View, error) {
	g.settle()
	if position < 0 || position >= Length {
		return g.view(), ErrInvalidPosition
	}
	if g.state != StateCollecting {
		return g.view(), nil
	}
	if g.buffer[position] != "" {
		g.buffer[position] = ""
		g.cursor = position
		return g.view(), nil
	}
	if position > 0 {
		g.cursor = position - 1
	}
	return g.view(), nil
}

func (g *Gate) State() State {
	g.settle()
	return g.state
}

// View reports the settled state.
func (g *Gate) View() View {
	g.settle()
	return g.view()
}

func (g *Gate) view() View {
	filled := make([]bool, Length)
	for i, d := range g.buffer {
		filled[i] = d != ""
	}
	return View{State: g.state, Cursor: g.cursor, Filled: filled}
}
