// Package order implements the order lifecycle: the progression of one order
// session from an open cart through validation, checkout, and payment to a
// confirmed order.
//
// The package separates two notions of "state":
//
//   - Stage is the internal workflow machine (Pending, Validated, CheckedOut,
//     Confirmed, Failed) with enforced transitions. It gates which operations
//     are legal.
//   - Status is the free-text customer-facing label ("Pending", "Preparing",
//     "Out for Delivery", ...). It can be set to any string via UpdateStatus
//     and every change synchronously notifies the registered observers.
//
// An Order borrows its Cart, delivery-address provider, and catalog; the
// caller owns their lifetimes. One Order instance serves exactly one in-flight
// checkout and is not safe for concurrent use.
package order
