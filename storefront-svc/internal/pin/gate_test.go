package pin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	code  string
	err   error
	calls int
}

func (s *stubVerifier) VerifyPin(_ context.Context, code string) (bool, error) {
	s.calls++
	if s.err != nil {
		return false, s.err
	}
	return code == s.code, nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGate(v Verifier, clock *fakeClock) *Gate {
	return NewGate(Options{
		Verifier:   v,
		ResetDelay: 300 * time.Millisecond,
		Now:        clock.Now,
	})
}

func pressAll(t *testing.T, g *Gate, digits ...string) View {
	t.Helper()
	var view View
	for _, d := range digits {
		var err error
		view, err = g.Press(context.Background(), d)
		require.NoError(t, err)
	}
	return view
}

func TestGateMatchAuthorizes(t *testing.T) {
	v := &stubVerifier{code: "1234"}
	g := newTestGate(v, &fakeClock{t: time.Unix(0, 0)})

	view := pressAll(t, g, "1", "2", "3", "4")

	assert.Equal(t, StateAuthorized, view.State)
	assert.Equal(t, []bool{true, true, true, true}, view.Filled)
	assert.Equal(t, 1, v.calls)
}

func TestGateMismatchThenResetAfterDelay(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	g := newTestGate(&stubVerifier{code: "1234"}, clock)

	view := pressAll(t, g, "1", "2", "3", "9")
	assert.Equal(t, StateError, view.State)

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, StateError, g.State())

	clock.Advance(200 * time.Millisecond)
	view = g.View()
	assert.Equal(t, StateCollecting, view.State)
	assert.Equal(t, 0, view.Cursor)
	assert.Equal(t, []bool{false, false, false, false}, view.Filled)
}

func TestGateInputDuringErrorStartsFresh(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	g := newTestGate(&stubVerifier{code: "1234"}, clock)
	pressAll(t, g, "9", "9", "9", "9")

	view := pressAll(t, g, "1")

	assert.Equal(t, StateCollecting, view.State)
	assert.Equal(t, 1, view.Cursor)
	assert.Equal(t, []bool{true, false, false, false}, view.Filled)
}

func TestGateRejectsNonDigit(t *testing.T) {
	g := newTestGate(&stubVerifier{code: "1234"}, &fakeClock{})
	pressAll(t, g, "1")
	before := g.View()

	for _, input := range []string{"a", "", "12", "-", " "} {
		view, err := g.Press(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidDigit, "input %q", input)
		assert.Equal(t, before, view)
	}
}

func TestGateEnterOutOfRange(t *testing.T) {
	g := newTestGate(&stubVerifier{code: "1234"}, &fakeClock{})
	_, err := g.Enter(context.Background(), 4, "1")
	assert.ErrorIs(t, err, ErrInvalidPosition)
	_, err = g.Backspace(-1)
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestGateIncompleteBufferIsMismatch(t *testing.T) {
	v := &stubVerifier{code: "1234"}
	g := newTestGate(v, &fakeClock{})

	view, err := g.Enter(context.Background(), 3, "4")

	require.NoError(t, err)
	assert.Equal(t, StateError, view.State)
	assert.Zero(t, v.calls)
}

func TestGateBackspace(t *testing.T) {
	g := newTestGate(&stubVerifier{code: "1234"}, &fakeClock{})
	pressAll(t, g, "1", "2")

	view, err := g.Backspace(2)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Cursor)
	assert.Equal(t, []bool{true, true, false, false}, view.Filled, "focus moves without deleting")

	view, err = g.Backspace(1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Cursor)
	assert.Equal(t, []bool{true, false, false, false}, view.Filled)

	view, err = g.Backspace(0)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Cursor)
	assert.Equal(t, []bool{false, false, false, false}, view.Filled)

	view, err = g.Backspace(0)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Cursor)
}

func TestGateVerifierErrorResetsBuffer(t *testing.T) {
	boom := errors.New("verifier down")
	g := newTestGate(&stubVerifier{err: boom}, &fakeClock{})
	pressAll(t, g, "1", "2", "3")

	view, err := g.Press(context.Background(), "4")

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateCollecting, view.State)
	assert.Equal(t, 0, view.Cursor)
	assert.Equal(t, []bool{false, false, false, false}, view.Filled)
}

func TestGateGuardBlocksWithoutStateChange(t *testing.T) {
	limited := errors.New("too many attempts")
	v := &stubVerifier{code: "1234"}
	g := NewGate(Options{
		Verifier: v,
		Guard:    func(context.Context) error { return limited },
	})
	pressAll(t, g, "1", "2", "3")
	before := g.View()

	view, err := g.Press(context.Background(), "4")

	assert.ErrorIs(t, err, limited)
	assert.Equal(t, before, view)
	assert.Zero(t, v.calls)
}

func TestGateOpenResetsResidue(t *testing.T) {
	g := newTestGate(&stubVerifier{code: "1234"}, &fakeClock{})
	pressAll(t, g, "1", "2", "3", "4")
	require.Equal(t, StateAuthorized, g.State())

	view, err := g.Press(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, StateAuthorized, view.State, "authorized is terminal until reopened")

	g.Open()
	view = g.View()
	assert.Equal(t, StateCollecting, view.State)
	assert.Equal(t, 0, view.Cursor)
	assert.Equal(t, []bool{false, false, false, false}, view.Filled)
}

func TestBcryptVerifier(t *testing.T) {
	_, err := NewBcryptVerifier("12a4")
	assert.Error(t, err)
	_, err = NewBcryptVerifier("12345")
	assert.Error(t, err)

	v, err := NewBcryptVerifier("4821")
	require.NoError(t, err)

	ok, err := v.VerifyPin(context.Background(), "4821")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.VerifyPin(context.Background(), "4822")
	require.NoError(t, err)
	assert.False(t, ok)
}
