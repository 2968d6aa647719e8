package cart

import (
	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// taxRate is the flat tax applied to the cart subtotal.
func taxRate() decimal.Decimal {
	return decimal.RequireFromString("0.10")
}

// deliveryFee is the flat per-order delivery charge. It applies even to an
// empty cart: the fee is a minimum charge, not a per-item cost.
func deliveryFee() kernel.Money {
	fee, err := kernel.MoneyFromString("5.00")
	if err != nil {
		panic(err) // unreachable: literal is a valid amount
	}
	return fee
}

// PricingSummary is the derived cost breakdown of a cart. It is recomputed on
// demand from current cart state and never stored, so it cannot go stale.
type PricingSummary struct {
	Subtotal    kernel.Money
	Tax         kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
}

// Totals computes the current pricing summary:
// subtotal is the sum of all line subtotals, tax is 10% of the subtotal
// rounded to currency precision, and the flat delivery fee is always added.
func (c *Cart) Totals() PricingSummary {
	subtotal := kernel.ZeroMoney()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.subtotal())
	}

	tax := subtotal.MulRate(taxRate())
	fee := deliveryFee()

	return PricingSummary{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
	}
}
