// Package checkout derives order totals from cart line items. All math is
// fixed-point decimal; currency amounts are rounded to 2 places only at the
// tax and total boundaries, so display never drifts.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/velora-jewels/storefront-go/internal/domain/cart"
)

// TaxRate is the flat sales tax applied to the subtotal.
var TaxRate = decimal.RequireFromString("0.08")

// Totals breaks down the amount due at checkout.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// Calculate computes checkout totals from cart lines:
//
//	subtotal = Σ quantity × price snapshot
//	tax      = round(subtotal × 8%, 2)
//	shipping = 0 (flat-rate free shipping)
//	total    = subtotal + tax + shipping
//
// Pure and deterministic; an empty cart yields all-zero totals.
func Calculate(items []cart.Item) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(item.PriceSnapshot.Mul(qty))
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(TaxRate).Round(2)
	shipping := decimal.Zero

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal.Add(tax).Add(shipping),
	}
}
