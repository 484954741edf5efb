package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SessionName is the cookie holding the storefront session.
const SessionName = "session"

// Session value keys.
const (
	SessionKeyID       = "session_id"
	SessionKeyCustomer = "customer_id"
)

type contextKey string

const (
	sessionIDContextKey  contextKey = "session_id"
	customerIDContextKey contextKey = "customer_id"
)

// SessionMiddleware attaches a stable per-browser session id to every request.
// The id keys the server-side cart store; the cookie itself never carries
// cart contents.
type SessionMiddleware struct {
	store sessions.Store
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(store sessions.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// Handler ensures the request has a session id, creating one on first visit,
// and puts the session id and any authenticated customer id on the context.
func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := m.store.Get(r, SessionName)

		sessionID, ok := session.Values[SessionKeyID].(string)
		if !ok || sessionID == "" {
			sessionID = uuid.NewString()
			session.Values[SessionKeyID] = sessionID
			// Best effort; a failed save just means a fresh cart next time.
			_ = session.Save(r, w)
		}

		ctx := context.WithValue(r.Context(), sessionIDContextKey, sessionID)
		if customerID, ok := session.Values[SessionKeyCustomer].(int); ok {
			ctx = context.WithValue(ctx, customerIDContextKey, customerID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID returns the request's session id, or "" if the middleware did
// not run.
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDContextKey).(string); ok {
		return id
	}
	return ""
}

// GetCustomerID returns the authenticated customer's id, or nil for guests.
func GetCustomerID(ctx context.Context) *int {
	if id, ok := ctx.Value(customerIDContextKey).(int); ok {
		return &id
	}
	return nil
}

// WithSessionID is used by tests to inject a session id without cookies.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDContextKey, sessionID)
}

// WithCustomerID is used by tests to simulate an authenticated session.
func WithCustomerID(ctx context.Context, customerID int) context.Context {
	return context.WithValue(ctx, customerIDContextKey, customerID)
}
