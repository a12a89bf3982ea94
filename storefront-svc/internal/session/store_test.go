package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetDelete(t *testing.T) {
	st := NewStore()
	s := newTestSession(time.Now())

	st.Put(s)
	got, ok := st.Get("s1")
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Equal(t, 1, st.Len())

	st.Delete("s1")
	_, ok = st.Get("s1")
	assert.False(t, ok)
}

func TestStoreSweep(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore()

	idle := newTestSession(base)
	idle.ID = "idle"
	fresh := newTestSession(base)
	fresh.ID = "fresh"
	fresh.Touch(base.Add(3 * time.Hour))
	busy := newTestSession(base)
	busy.ID = "busy"
	_, err := busy.AddToCart("1")
	require.NoError(t, err)
	_, err = busy.BeginSubmit()
	require.NoError(t, err)

	st.Put(idle)
	st.Put(fresh)
	st.Put(busy)

	removed := st.Sweep(base.Add(5*time.Hour), 4*time.Hour)

	assert.Equal(t, 1, removed)
	_, ok := st.Get("idle")
	assert.False(t, ok)
	_, ok = st.Get("fresh")
	assert.True(t, ok)
	_, ok = st.Get("busy")
	assert.True(t, ok)
}

func TestStoreSweepDoesNotBlockLookups(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore()
	locked := newTestSession(base)
	locked.ID = "locked"
	other := newTestSession(base)
	other.ID = "other"
	other.Touch(base.Add(5 * time.Hour))
	st.Put(locked)
	st.Put(other)

	// Held as during a PIN verification.
	locked.mu.Lock()
	swept := make(chan int, 1)
	go func() {
		swept <- st.Sweep(base.Add(5*time.Hour), 4*time.Hour)
	}()
	time.Sleep(20 * time.Millisecond)

	found := make(chan bool, 1)
	go func() {
		_, ok := st.Get("other")
		found <- ok
	}()
	select {
	case ok := <-found:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Get blocked behind Sweep")
	}

	locked.mu.Unlock()
	assert.Equal(t, 1, <-swept)
	_, ok := st.Get("locked")
	assert.False(t, ok)
}
