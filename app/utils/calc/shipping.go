package calc

import "github.com/shopspring/decimal"

// The storefront ships at one flat fee below the free-shipping threshold.
// Both values are overridable from the environment at startup.
var (
	FreeShippingThreshold = decimal.NewFromInt(999)
	ShippingFlatFee       = decimal.NewFromInt(99)
)

func ConfigureShipping(threshold, flatFee decimal.Decimal) {
	if threshold.GreaterThan(decimal.Zero) {
		FreeShippingThreshold = threshold
	}
	if flatFee.GreaterThanOrEqual(decimal.Zero) {
		ShippingFlatFee = flatFee
	}
}

func ShippingCost(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeShippingThreshold) {
		return decimal.Zero
	}
	return ShippingFlatFee
}
