package journal

import (
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds the session's entries for one child, newest-first. Entries are
// append-only: there is no update or delete, and clearing happens only through
// session teardown in Stores.
type Store struct {
	mu      sync.RWMutex
	entries []Entry // oldest at index 0; read back-to-front
	last    time.Time
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Append inserts the entry at the head of the store order and returns the
// stored record. An id and creation timestamp are assigned when the entry does
// not already carry them, so an entry persisted elsewhere first keeps its
// identity here. Creation timestamps are strictly monotonic within one store,
// so creation-order ties cannot occur even if the wall clock stalls or
// regresses.
func (s *Store) Append(e Entry) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if !e.CreatedAt.After(s.last) {
		e.CreatedAt = s.last.Add(time.Nanosecond)
	}
	s.last = e.CreatedAt

	s.entries = append(s.entries, e)
	return e
}

// List returns a lazy, restartable sequence of entries in store order
// (newest-created first). A positive limit caps the number of items yielded;
// zero or negative yields everything. Iteration works over a snapshot, so the
// store is never mutated or held locked while the caller consumes it.
func (s *Store) List(limit int) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		s.mu.RLock()
		snapshot := make([]Entry, len(s.entries))
		copy(snapshot, s.entries)
		s.mu.RUnlock()

		n := len(snapshot)
		if limit > 0 && limit < n {
			n = limit
		}
		for i := 0; i < n; i++ {
			if !yield(snapshot[len(snapshot)-1-i]) {
				return
			}
		}
	}
}

// Recent collects at most limit newest entries into a slice.
func (s *Store) Recent(limit int) []Entry {
	var out []Entry
	for e := range s.List(limit) {
		out = append(out, e)
	}
	return out
}

// Len returns the number of entries held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stores keys session stores by child id. Logout clears them; the stores
// themselves expose no removal.
type Stores struct {
	mu      sync.Mutex
	byChild map[string]*Store
}

// NewStores returns an empty session-store registry.
func NewStores() *Stores {
	return &Stores{byChild: make(map[string]*Store)}
}

// ForChild returns the session store for a child, creating it on first use.
func (s *Stores) ForChild(childID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.byChild[childID]
	if !ok {
		st = NewStore()
		s.byChild[childID] = st
	}
	return st
}

// Clear drops every session store. Called on logout.
func (s *Stores) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byChild = make(map[string]*Store)
}
