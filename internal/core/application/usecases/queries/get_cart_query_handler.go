package queries

import (
	"context"

	"ordering/internal/core/ports"
)

// GetCartQueryHandler reads cart snapshots from the session store. Carts are
// session state, so this is the one query that does not touch the database.
type GetCartQueryHandler struct {
	sessionStore ports.SessionStore
}

// NewGetCartQueryHandler creates a handler for cart snapshot queries.
func NewGetCartQueryHandler(sessionStore ports.SessionStore) GetCartQueryHandler {
	return GetCartQueryHandler{sessionStore: sessionStore}
}

// Handle executes the query against the live session.
// Pricing is derived from the current cart contents on every call; even an
// empty cart carries the flat delivery fee in its total.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	o, err := h.sessionStore.Get(query.OrderID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	items := make([]CartItemResponse, 0, o.Cart().Len())
	for _, item := range o.Cart().Items() {
		items = append(items, CartItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		})
	}

	pricing := o.Cart().Totals()

	return GetCartQueryResponse{
		Items:       items,
		Subtotal:    pricing.Subtotal,
		Tax:         pricing.Tax,
		DeliveryFee: pricing.DeliveryFee,
		Total:       pricing.Total,
		Status:      o.Status(),
	}, nil
}
