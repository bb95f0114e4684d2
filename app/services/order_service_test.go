package services

import (
	"context"
	"errors"
	"testing"

	"github.com/sakhi-sarees/storefront/app/models"
)

func newOrderFixture() *OrderService {
	orders := &fakeOrderRepo{orders: []models.Order{
		{
			OrderID:       "order_abc123",
			CustomerEmail: "meera@example.com",
			CustomerPhone: "9876543210",
			Status:        models.OrderStatusConfirmed,
		},
		{
			OrderID:       "order_def456",
			CustomerEmail: "ravi@example.com",
			CustomerPhone: "9123456780",
			Status:        models.OrderStatusShipped,
		},
	}}
	return NewOrderService(orders)
}

func TestOrderGetByOrderID(t *testing.T) {
	ctx := context.Background()
	svc := newOrderFixture()

	order, err := svc.GetByOrderID(ctx, "order_abc123")
	if err != nil {
		t.Fatalf("GetByOrderID returned error: %v", err)
	}
	if order.CustomerEmail != "meera@example.com" {
		t.Errorf("email = %q", order.CustomerEmail)
	}

	if _, err := svc.GetByOrderID(ctx, "order_nope"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderHistory(t *testing.T) {
	ctx := context.Background()
	svc := newOrderFixture()

	orders, err := svc.History(ctx, "meera@example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || orders[0].OrderID != "order_abc123" {
		t.Errorf("history by email = %v, want the single matching order", orders)
	}

	orders, err = svc.History(ctx, "", "9123456780")
	if err != nil {
		t.Fatal(err)
	}
	if len(orders) != 1 || orders[0].OrderID != "order_def456" {
		t.Errorf("history by phone = %v, want the single matching order", orders)
	}
}

func TestOrderTrack(t *testing.T) {
	ctx := context.Background()
	svc := newOrderFixture()

	t.Run("matching email", func(t *testing.T) {
		order, err := svc.Track(ctx, "order_abc123", "MEERA@example.com")
		if err != nil {
			t.Fatalf("Track returned error: %v", err)
		}
		if order.OrderID != "order_abc123" {
			t.Errorf("order id = %q", order.OrderID)
		}
	})

	t.Run("wrong email reveals nothing", func(t *testing.T) {
		if _, err := svc.Track(ctx, "order_abc123", "intruder@example.com"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("err = %v, want ErrOrderNotFound", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		if _, err := svc.Track(ctx, "order_nope", "meera@example.com"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("err = %v, want ErrOrderNotFound", err)
		}
	})
}
