package calc

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// DiscountPercentage is the rounded markdown between the original and the
// sale price. Products without an original price carry no discount.
func DiscountPercentage(originalPrice, salePrice decimal.Decimal) int {
	if originalPrice.LessThanOrEqual(decimal.Zero) {
		return 0
	}

	pct := originalPrice.Sub(salePrice).Div(originalPrice).Mul(oneHundred)
	return int(pct.Round(0).IntPart())
}
