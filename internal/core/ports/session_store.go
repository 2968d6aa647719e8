package ports

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// SessionStore keeps in-flight order sessions keyed by session id.
// Sessions are deliberately not persisted: a cart lives only as long as its
// order session, and the store only hands out the one live instance per id.
//
// The store itself is safe for concurrent use, but a single session is not;
// callers serialize operations per order.
type SessionStore interface {
	// Add registers a new order session.
	// Fails when a session with the same id already exists.
	Add(o *order.Order) error

	// Get retrieves a live session by id.
	// Returns an object-not-found error for unknown ids.
	Get(id kernel.UUID) (*order.Order, error)

	// Remove discards a session. Removal is idempotent.
	Remove(id kernel.UUID)
}
