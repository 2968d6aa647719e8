// Package kernel contains shared value objects used across the ordering domain.
//
// The kernel provides the building blocks that every aggregate relies on:
//
//   - UUID: a constructor-guarded identifier wrapping github.com/google/uuid
//   - Money: a non-negative currency amount with exact decimal arithmetic
//
// All kernel types are immutable value objects. The zero value of each type is
// invalid and fails Validate(); instances must be created through the provided
// factory functions so that invariants hold everywhere a kernel value appears.
package kernel
