package session

import (
	"sync"
	"time"
)

// Store keeps live sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than maxIdle. Sessions with an
// external call in flight are kept. It returns the number removed.
// Session locks are never taken while the store lock is held.
func (st *Store) Sweep(now time.Time, maxIdle time.Duration) int {
	st.mu.RLock()
	candidates := make([]*Session, 0, len(st.sessions))
	for _, s := range st.sessions {
		candidates = append(candidates, s)
	}
	st.mu.RUnlock()

	var idle []*Session
	for _, s := range candidates {
		if s.Busy() || now.Sub(s.LastSeen()) <= maxIdle {
			continue
		}
		idle = append(idle, s)
	}
	if len(idle) == 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for _, s := range idle {
		// Replaced under the same id since the scan.
		if st.sessions[s.ID] != s {
			continue
		}
		delete(st.sessions, s.ID)
		removed++
	}
	return removed
}
