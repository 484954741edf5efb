package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"esim4travel/internal/models"
)

type memoryEntry struct {
	mu        sync.Mutex
	cart      *models.Cart
	expiresAt time.Time
}

// MemoryStore keeps carts in process memory with a per-session mutex.
// Suitable for a single-instance deployment; use RedisStore when the
// storefront runs more than one replica.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	done    chan struct{}
}

// NewMemoryStore creates an in-memory cart store and starts its expiry sweep.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		done:    make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Close stops the expiry sweep goroutine.
func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) entry(sessionID string) *memoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		e = &memoryEntry{cart: models.NewCart()}
		s.entries[sessionID] = e
	}
	e.expiresAt = time.Now().Add(TTL)
	return e
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneCart(e.cart)
}

func (s *MemoryStore) Update(ctx context.Context, sessionID string, fn func(*models.Cart) error) (*models.Cart, error) {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Mutate a copy so a failed fn leaves the stored cart untouched.
	next, err := cloneCart(e.cart)
	if err != nil {
		return nil, err
	}
	if err := fn(next); err != nil {
		return nil, err
	}
	e.cart = next
	return cloneCart(next)
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	e := s.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = models.NewCart()
	return nil
}

// cleanup removes expired carts periodically.
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// cloneCart deep-copies a cart through its JSON form so callers never share
// the stored item slice.
func cloneCart(c *models.Cart) (*models.Cart, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	out := models.NewCart()
	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []models.CartItem{}
	}
	return out, nil
}
