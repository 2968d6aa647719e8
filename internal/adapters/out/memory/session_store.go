// Package memory provides in-process adapters for state that is deliberately
// not persisted, such as in-flight order sessions.
package memory

import (
	"fmt"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// SessionStore is a concurrency-safe in-memory implementation of
// ports.SessionStore. Sessions vanish on process restart, which matches the
// lifecycle of a cart: it only exists while the customer is ordering.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*order.Order
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[kernel.UUID]*order.Order),
	}
}

// Add registers a new order session. Adding an id twice is a programming
// error on the caller's side and is rejected.
func (s *SessionStore) Add(o *order.Order) error {
	if o == nil {
		return errs.NewValueIsRequiredError("o")
	}
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := o.ID()
	if _, exists := s.sessions[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause("o",
			fmt.Errorf("session %s already exists", id))
	}
	s.sessions[id] = o
	return nil
}

// Get retrieves a live session by id.
func (s *SessionStore) Get(id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	o, exists := s.sessions[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("id", id)
	}
	return o, nil
}

// Remove discards a session. Removing an unknown id is a no-op.
func (s *SessionStore) Remove(id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
