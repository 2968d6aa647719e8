// Package cart implements the shopping cart for a single order session.
//
// A Cart holds insertion-ordered line items keyed by item name. Adding an item
// whose name is already present merges quantities instead of duplicating the
// row, so a cart never holds more than one line per name. Carts live only for
// the duration of an order session and are never persisted.
//
// Pricing is fully derived: Totals recomputes the subtotal, a 10% tax, and the
// flat delivery fee from the current line items on every call, so there is no
// cached summary that could go stale. The delivery fee is charged even on an
// empty cart, which implements the minimum-charge policy.
package cart
