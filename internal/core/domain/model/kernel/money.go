package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// currencyPrecision is the number of decimal places kept for all amounts.
const currencyPrecision = 2

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. Returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney, MoneyFromFloat, MoneyFromString, or ZeroMoney")

// Money is a value object representing a non-negative currency amount.
// It wraps github.com/shopspring/decimal to keep pricing arithmetic exact:
// binary floating point cannot represent amounts like 9.99, and pricing rules
// (10% tax on 9.99 must round to 1.00) depend on decimal rounding.
//
// Money has no currency dimension: the module prices everything in a single
// implicit currency.
//
// Amounts are normalized to two decimal places using half-up rounding at every
// construction and arithmetic step. Money is immutable; arithmetic methods
// return new values.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are rejected; the amount is rounded to currency precision.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount.Round(currencyPrecision),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromFloat creates a Money from a float64 amount.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString creates a Money from a decimal string such as "12.99".
func MoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns a properly constructed zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(currencyPrecision),
		guard:  guard.NewConstructorGuard(),
	}
}

// MulRate returns the amount multiplied by a fractional rate, rounded half-up
// to currency precision. Used for percentage charges such as tax.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{
		amount: m.amount.Mul(rate).Round(currencyPrecision),
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for presentation layers.
// The result is approximate; domain logic must use decimal arithmetic.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount formatted with exactly two decimal places, e.g. "9.99".
func (m Money) String() string {
	return m.amount.StringFixed(currencyPrecision)
}

// Validate checks that the Money value was properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
