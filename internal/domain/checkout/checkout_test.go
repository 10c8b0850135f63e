package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/velora-jewels/storefront-go/internal/domain/cart"
)

func item(qty int, price string) cart.Item {
	return cart.Item{
		Quantity:      qty,
		PriceSnapshot: decimal.RequireFromString(price),
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got),
		"want %s, got %s", want, got)
}

func TestCalculate_TwoLineCart(t *testing.T) {
	// qty 2 @ $100 plus qty 1 @ $50.
	totals := Calculate([]cart.Item{
		item(2, "100.00"),
		item(1, "50.00"),
	})

	assertDecimal(t, "250.00", totals.Subtotal)
	assertDecimal(t, "20.00", totals.Tax)
	assertDecimal(t, "0", totals.Shipping)
	assertDecimal(t, "270.00", totals.Total)
}

func TestCalculate_EmptyCart(t *testing.T) {
	totals := Calculate(nil)

	assertDecimal(t, "0", totals.Subtotal)
	assertDecimal(t, "0", totals.Tax)
	assertDecimal(t, "0", totals.Total)
}

func TestCalculate_TaxRoundsToCents(t *testing.T) {
	// 33.33 * 0.08 = 2.6664, rounds to 2.67.
	totals := Calculate([]cart.Item{item(1, "33.33")})

	assertDecimal(t, "33.33", totals.Subtotal)
	assertDecimal(t, "2.67", totals.Tax)
	assertDecimal(t, "36.00", totals.Total)
}

func TestCalculate_NoFloatDrift(t *testing.T) {
	// 0.10 added ten times is exactly 1.00 in fixed-point arithmetic.
	items := make([]cart.Item, 10)
	for i := range items {
		items[i] = item(1, "0.10")
	}

	totals := Calculate(items)
	assertDecimal(t, "1.00", totals.Subtotal)
	assertDecimal(t, "0.08", totals.Tax)
	assertDecimal(t, "1.08", totals.Total)
}

func TestCalculate_UsesSnapshotNotQuantityAlone(t *testing.T) {
	totals := Calculate([]cart.Item{
		item(3, "19.99"),
	})

	assertDecimal(t, "59.97", totals.Subtotal)
	// 59.97 * 0.08 = 4.7976 -> 4.80
	assertDecimal(t, "4.80", totals.Tax)
	assertDecimal(t, "64.77", totals.Total)
}
