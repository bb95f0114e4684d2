package calc

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"well below threshold", 400, 99},
		{"exactly at threshold still pays", 999, 99},
		{"just above threshold ships free", 1000, 0},
		{"large order ships free", 12000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShippingCost(decimal.NewFromInt(tt.subtotal))
			if !got.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("ShippingCost(%d) = %s, want %d", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestConfigureShipping(t *testing.T) {
	origThreshold, origFee := FreeShippingThreshold, ShippingFlatFee
	defer func() {
		FreeShippingThreshold, ShippingFlatFee = origThreshold, origFee
	}()

	ConfigureShipping(decimal.NewFromInt(1500), decimal.NewFromInt(49))
	if !ShippingCost(decimal.NewFromInt(1200)).Equal(decimal.NewFromInt(49)) {
		t.Error("configured flat fee should apply below the new threshold")
	}
	if !ShippingCost(decimal.NewFromInt(1501)).IsZero() {
		t.Error("shipping should be free above the new threshold")
	}

	// Non-positive threshold and negative fee are ignored.
	ConfigureShipping(decimal.Zero, decimal.NewFromInt(-1))
	if !FreeShippingThreshold.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("threshold = %s, want unchanged 1500", FreeShippingThreshold)
	}
	if !ShippingFlatFee.Equal(decimal.NewFromInt(49)) {
		t.Errorf("flat fee = %s, want unchanged 49", ShippingFlatFee)
	}
}
