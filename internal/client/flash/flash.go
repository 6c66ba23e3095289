// Package flash holds the single-slot transient user message. One message
// is live at a time; setting a new one replaces the old, and each message
// clears itself after a fixed delay unless superseded first.
package flash

import (
	"sync"
	"time"
)

// DefaultTTL is how long a message stays live before auto-clearing.
const DefaultTTL = 5 * time.Second

// Store is the single-slot message holder. Every Set stamps a new version;
// the expiry timer clears the slot only if its version is still the live
// one, so an old timer can never blank a newer message. Safe for
// concurrent use.
type Store struct {
	mu      sync.Mutex
	message string
	version uint64
	ttl     time.Duration
}

// NewStore builds a Store with the given auto-clear delay; a non-positive
// ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{ttl: ttl}
}

// Set replaces the current message and schedules its expiry.
func (s *Store) Set(text string) {
	s.mu.Lock()
	s.message = text
	s.version++
	v := s.version
	s.mu.Unlock()

	time.AfterFunc(s.ttl, func() { s.expire(v) })
}

// expire clears the slot only when the scheduling Set is still current.
func (s *Store) expire(version uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version == version {
		s.message = ""
	}
}

// Clear blanks the message immediately and invalidates any pending timer.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = ""
	s.version++
}

// Message returns the current text, empty string when none.
func (s *Store) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}
