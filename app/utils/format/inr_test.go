package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestINR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "₹0"},
		{99, "₹99"},
		{2500, "₹2,500"},
		{125000, "₹125,000"},
	}
	for _, tt := range tests {
		if got := INR(decimal.NewFromInt(tt.amount)); got != tt.want {
			t.Errorf("INR(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
