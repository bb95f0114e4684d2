package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sakhi-sarees/storefront/app/models"
)

func newCheckoutFixture() (*CheckoutService, *fakeGateway, *fakeOrderRepo, *fakeProductRepo) {
	products := &fakeProductRepo{products: []models.Product{
		{
			ID:            "p1",
			Name:          "Kanjivaram Silk Saree",
			Slug:          "kanjivaram-silk-saree",
			SalePrice:     decimal.NewFromInt(2500),
			OriginalPrice: decimal.NewFromInt(3200),
			StockQuantity: 3,
			IsActive:      true,
		},
		{
			ID:            "p2",
			Name:          "Daily Wear Cotton Saree",
			Slug:          "daily-wear-cotton-saree",
			SalePrice:     decimal.NewFromInt(400),
			OriginalPrice: decimal.NewFromInt(500),
			StockQuantity: 10,
			IsActive:      true,
		},
	}}
	carts := &fakeCartItemRepo{}
	orders := &fakeOrderRepo{products: products, carts: carts}
	gateway := &fakeGateway{
		orderID: "order_abc123",
		validSigs: map[string]string{
			"order_abc123|pay_xyz789": "goodsig",
		},
	}
	return NewCheckoutService(gateway, products, orders), gateway, orders, products
}

func validVerifyRequest() VerifyRequest {
	return VerifyRequest{
		GatewayOrderID:   "order_abc123",
		GatewayPaymentID: "pay_xyz789",
		Signature:        "goodsig",
		SessionKey:       "sess1",
		CustomerName:     "Meera Iyer",
		CustomerEmail:    "meera@example.com",
		CustomerPhone:    "9876543210",
		AddressLine:      "12 Temple Street",
		City:             "Chennai",
		State:            "Tamil Nadu",
		Pincode:          "600004",
		ProductSlug:      "kanjivaram-silk-saree",
		Quantity:         1,
	}
}

func TestBeginCheckout(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newCheckoutFixture()

	t.Run("rejects non-positive amount", func(t *testing.T) {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
			if _, err := svc.BeginCheckout(ctx, amount); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("amount %s: err = %v, want ErrInvalidAmount", amount, err)
			}
		}
	})

	t.Run("returns the gateway order", func(t *testing.T) {
		order, err := svc.BeginCheckout(ctx, decimal.NewFromInt(2500))
		if err != nil {
			t.Fatalf("BeginCheckout returned error: %v", err)
		}
		if order.OrderID != "order_abc123" {
			t.Errorf("order id = %q, want order_abc123", order.OrderID)
		}
		if order.Currency != "INR" {
			t.Errorf("currency = %q, want INR", order.Currency)
		}
	})
}

func TestVerifyAndRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms a valid payment", func(t *testing.T) {
		svc, _, orders, products := newCheckoutFixture()
		req := validVerifyRequest()

		order, err := svc.VerifyAndRecord(ctx, req)
		if err != nil {
			t.Fatalf("VerifyAndRecord returned error: %v", err)
		}
		if order.Status != models.OrderStatusConfirmed {
			t.Errorf("status = %q, want confirmed", order.Status)
		}
		// 2500 is above the free-shipping threshold.
		if !order.TotalAmount.Equal(decimal.NewFromInt(2500)) {
			t.Errorf("total = %s, want 2500", order.TotalAmount)
		}
		if order.PaymentDate == nil {
			t.Error("payment date should be stamped")
		}
		if products.products[0].StockQuantity != 2 {
			t.Errorf("stock = %d, want 2 after decrement", products.products[0].StockQuantity)
		}
		if len(orders.orders) != 1 {
			t.Fatalf("orders recorded = %d, want 1", len(orders.orders))
		}
	})

	t.Run("adds the flat fee below the threshold", func(t *testing.T) {
		svc, gateway, _, _ := newCheckoutFixture()
		gateway.validSigs["order_abc123|pay_xyz789"] = "goodsig"
		req := validVerifyRequest()
		req.ProductSlug = "daily-wear-cotton-saree"
		req.Quantity = 2

		order, err := svc.VerifyAndRecord(ctx, req)
		if err != nil {
			t.Fatalf("VerifyAndRecord returned error: %v", err)
		}
		if !order.ShippingFee.Equal(decimal.NewFromInt(99)) {
			t.Errorf("shipping = %s, want 99", order.ShippingFee)
		}
		if !order.TotalAmount.Equal(decimal.NewFromInt(899)) {
			t.Errorf("total = %s, want 899", order.TotalAmount)
		}
	})

	t.Run("rejects a tampered signature without recording", func(t *testing.T) {
		svc, _, orders, products := newCheckoutFixture()
		req := validVerifyRequest()
		req.Signature = "forged"

		if _, err := svc.VerifyAndRecord(ctx, req); !errors.Is(err, ErrPaymentVerificationFailed) {
			t.Fatalf("err = %v, want ErrPaymentVerificationFailed", err)
		}
		if len(orders.orders) != 0 {
			t.Error("no order should be recorded on a bad signature")
		}
		if products.products[0].StockQuantity != 3 {
			t.Error("stock should be untouched on a bad signature")
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, _, _, _ := newCheckoutFixture()
		req := validVerifyRequest()
		req.ProductSlug = "no-such-saree"

		if _, err := svc.VerifyAndRecord(ctx, req); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("err = %v, want ErrProductNotFound", err)
		}
	})

	t.Run("rejects a mismatched amount", func(t *testing.T) {
		svc, _, _, _ := newCheckoutFixture()
		req := validVerifyRequest()
		req.Amount = decimal.NewFromInt(1) // real total is 2500

		if _, err := svc.VerifyAndRecord(ctx, req); !errors.Is(err, ErrAmountMismatch) {
			t.Fatalf("err = %v, want ErrAmountMismatch", err)
		}
	})

	t.Run("accepts the recomputed amount", func(t *testing.T) {
		svc, _, _, _ := newCheckoutFixture()
		req := validVerifyRequest()
		req.Amount = decimal.NewFromInt(2500)

		if _, err := svc.VerifyAndRecord(ctx, req); err != nil {
			t.Fatalf("VerifyAndRecord returned error: %v", err)
		}
	})

	t.Run("fails when stock ran out", func(t *testing.T) {
		svc, _, _, _ := newCheckoutFixture()
		req := validVerifyRequest()
		req.Quantity = 4 // stock is 3

		if _, err := svc.VerifyAndRecord(ctx, req); !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("err = %v, want ErrInsufficientStock", err)
		}
	})

	t.Run("rejects a replayed gateway order id", func(t *testing.T) {
		svc, _, _, _ := newCheckoutFixture()
		req := validVerifyRequest()

		if _, err := svc.VerifyAndRecord(ctx, req); err != nil {
			t.Fatalf("first record: %v", err)
		}
		if _, err := svc.VerifyAndRecord(ctx, req); !errors.Is(err, ErrDuplicateOrder) {
			t.Fatalf("err = %v, want ErrDuplicateOrder on replay", err)
		}
	})

	t.Run("clears the session cart", func(t *testing.T) {
		svc, _, orders, _ := newCheckoutFixture()
		orders.carts.items = append(orders.carts.items, models.CartItem{
			SessionKey: "sess1", ProductID: "p1", Quantity: 1,
		})

		if _, err := svc.VerifyAndRecord(ctx, validVerifyRequest()); err != nil {
			t.Fatal(err)
		}
		if len(orders.carts.items) != 0 {
			t.Errorf("cart items = %d, want 0 after checkout", len(orders.carts.items))
		}
	})
}
