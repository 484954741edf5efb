// Package cart keeps per-session shopping carts in a concurrency-safe store
// keyed by session id. Mutations run through Store.Update so two requests for
// the same session cannot lose each other's writes.
package cart

import (
	"context"
	"time"

	"esim4travel/internal/models"
)

// TTL is how long an untouched cart survives, matching the session cookie.
const TTL = 24 * time.Hour

// Store holds session carts. Implementations must make Update atomic per
// session key.
type Store interface {
	// Get returns the cart for the session, or a fresh empty cart if none
	// exists. The returned cart is a private copy.
	Get(ctx context.Context, sessionID string) (*models.Cart, error)

	// Update applies fn to the session's cart under the session's lock and
	// persists the result. If fn returns an error the cart is left unchanged.
	// The returned cart is the persisted state.
	Update(ctx context.Context, sessionID string, fn func(*models.Cart) error) (*models.Cart, error)

	// Clear replaces the session's cart with a fresh empty one.
	Clear(ctx context.Context, sessionID string) error
}
