// Package session keeps per-session carts in process memory.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/service"
)

type cartEntry struct {
	mu       sync.Mutex
	cart     *entity.Cart
	lastUsed time.Time
	removed  bool
}

// MemoryStore is a CartSessionStore backed by a map. Entries idle for longer
// than the TTL are removed by Sweep. Only non-empty carts hold an entry, and
// at most maxSessions of them are kept; zero means no limit.
type MemoryStore struct {
	mu          sync.Mutex
	entries     map[string]*cartEntry
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
	logger      *slog.Logger
}

var _ service.CartSessionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore(ttl time.Duration, maxSessions int, logger *slog.Logger) *MemoryStore {
	return &MemoryStore{
		entries:     make(map[string]*cartEntry),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *MemoryStore) With(_ context.Context, sessionKey string, fn func(cart *entity.Cart) error) error {
	for {
		entry, err := s.entry(sessionKey)
		if err != nil {
			return err
		}

		entry.mu.Lock()
		// Swept between lookup and lock; start over with a fresh entry.
		if entry.removed {
			entry.mu.Unlock()

			continue
		}

		entry.lastUsed = s.now()
		err = fn(entry.cart)
		if entry.cart.IsEmpty() {
			s.release(sessionKey, entry)
		}
		entry.mu.Unlock()

		return err
	}
}

func (s *MemoryStore) Drop(_ context.Context, sessionKey string) {
	s.mu.Lock()
	entry, ok := s.entries[sessionKey]
	delete(s.entries, sessionKey)
	s.mu.Unlock()

	if ok {
		entry.mu.Lock()
		entry.removed = true
		entry.mu.Unlock()
	}
}

// Sweep removes expired sessions and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		// A held entry is in use and therefore not idle.
		if !entry.mu.TryLock() {
			continue
		}
		if entry.lastUsed.Before(cutoff) {
			entry.removed = true
			delete(s.entries, key)
			removed++
		}
		entry.mu.Unlock()
	}

	return removed
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *MemoryStore) entry(sessionKey string) (*cartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionKey]
	if ok {
		return entry, nil
	}
	if s.maxSessions > 0 && len(s.entries) >= s.maxSessions {
		return nil, domainerrors.ErrCartSessionsExhausted
	}

	entry = &cartEntry{cart: entity.NewCart(), lastUsed: s.now()}
	s.entries[sessionKey] = entry

	return entry, nil
}

// release forgets an entry whose cart is empty. The caller holds entry.mu.
func (s *MemoryStore) release(sessionKey string, entry *cartEntry) {
	entry.removed = true

	s.mu.Lock()
	if s.entries[sessionKey] == entry {
		delete(s.entries, sessionKey)
	}
	s.mu.Unlock()
}

func (s *MemoryStore) sweepLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				s.logger.Debug("Expired cart sessions removed",
					slog.Int("removed", removed),
					slog.Int("remaining", s.Len()),
				)
			}
		}
	}
}
