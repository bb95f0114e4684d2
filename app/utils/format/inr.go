package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "₹", Precision: 0, Thousand: ","}

func INR(amount decimal.Decimal) string {
	return inr.FormatMoney(amount)
}
