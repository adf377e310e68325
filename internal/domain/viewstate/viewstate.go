// Package viewstate keeps recently written records per list scope so that
// list responses can splice fresh writes ahead of an eventually consistent
// query page. A full page fetch that already contains a remembered record
// supersedes the remembered copy.
package viewstate

import (
	"sync"
	"time"
)

type entry[T any] struct {
	id  string
	val T
	at  time.Time
}

// Store is a bounded, TTL-pruned splice buffer keyed by list scope (for
// example "orders:pending" or "bills:Ramesh").
type Store[T any] struct {
	mu     sync.Mutex
	ttl    time.Duration
	max    int
	scopes map[string][]entry[T]
}

func New[T any](ttl time.Duration, maxPerScope int) *Store[T] {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if maxPerScope <= 0 {
		maxPerScope = 25
	}
	return &Store[T]{
		ttl:    ttl,
		max:    maxPerScope,
		scopes: make(map[string][]entry[T]),
	}
}

// Remember records v under scope, replacing any previous entry with the same
// id. Oldest entries are dropped past the per-scope cap.
func (s *Store[T]) Remember(scope, id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.scopes[scope][:0]
	for _, e := range s.scopes[scope] {
		if e.id != id {
			kept = append(kept, e)
		}
	}
	kept = append(kept, entry[T]{id: id, val: v, at: time.Now()})
	if len(kept) > s.max {
		kept = kept[len(kept)-s.max:]
	}
	s.scopes[scope] = kept
}

// Forget drops the entry with the given id from scope, if present. Used when
// a record is deleted or moves out of the scope it was remembered under.
func (s *Store[T]) Forget(scope, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.scopes[scope][:0]
	for _, e := range s.scopes[scope] {
		if e.id != id {
			kept = append(kept, e)
		}
	}
	s.scopes[scope] = kept
}

// Splice returns page with still-live remembered records placed ahead of it,
// newest remembered first. A remembered record is skipped when the page
// already contains its id (the store copy is then dropped as indexed) or when
// keep rejects it. keep may be nil.
func (s *Store[T]) Splice(scope string, page []T, idOf func(T) string, keep func(T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.prune(scope)
	if len(live) == 0 {
		return page
	}

	inPage := make(map[string]bool, len(page))
	for _, it := range page {
		inPage[idOf(it)] = true
	}

	kept := make([]entry[T], 0, len(live))
	for _, e := range live {
		if !inPage[e.id] {
			kept = append(kept, e)
		}
	}
	s.scopes[scope] = kept

	ahead := make([]T, 0, len(kept))
	for i := len(kept) - 1; i >= 0; i-- {
		if keep != nil && !keep(kept[i].val) {
			continue
		}
		ahead = append(ahead, kept[i].val)
	}

	if len(ahead) == 0 {
		return page
	}
	return append(ahead, page...)
}

func (s *Store[T]) prune(scope string) []entry[T] {
	cutoff := time.Now().Add(-s.ttl)
	kept := s.scopes[scope][:0]
	for _, e := range s.scopes[scope] {
		if e.at.After(cutoff) {
			kept = append(kept, e)
		}
	}
	s.scopes[scope] = kept
	return kept
}
