package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
	"github.com/sakhi-sarees/storefront/app/repositories"
	"github.com/sakhi-sarees/storefront/app/utils/calc"
)

type CheckoutService struct {
	gateway     PaymentGateway
	productRepo repositories.ProductRepositoryImpl
	orderRepo   repositories.OrderRepositoryImpl
}

func NewCheckoutService(
	gateway PaymentGateway,
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
) *CheckoutService {
	return &CheckoutService{
		gateway:     gateway,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

type VerifyRequest struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
	SessionKey       string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	AddressLine string
	City        string
	State       string
	Pincode     string

	ProductSlug string
	Quantity    int
	Amount      decimal.Decimal
}

// BeginCheckout creates the provider-side order record and returns its
// identifiers verbatim.
func (s *CheckoutService) BeginCheckout(ctx context.Context, amount decimal.Decimal) (*GatewayOrder, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	receipt := "rcpt_" + uuid.New().String()[:8]
	gatewayOrder, err := s.gateway.CreateOrder(ctx, amount, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	log.Printf("CheckoutService: gateway order %s created for amount %s", gatewayOrder.OrderID, amount.StringFixed(2))
	return gatewayOrder, nil
}

// VerifyAndRecord checks the gateway signature, recomputes the total from the
// catalog price rather than trusting the caller, and persists the order as
// confirmed. Stock decrement, order insert and cart clearing share one
// transaction; a duplicate gateway order id fails instead of double-creating.
func (s *CheckoutService) VerifyAndRecord(ctx context.Context, req VerifyRequest) (*models.Order, error) {
	if !s.gateway.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature) {
		return nil, ErrPaymentVerificationFailed
	}

	product, err := s.productRepo.GetBySlug(ctx, req.ProductSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}

	subtotal := product.SalePrice.Mul(decimal.NewFromInt(int64(qty)))
	shipping := calc.ShippingCost(subtotal)
	total := subtotal.Add(shipping)

	if !req.Amount.IsZero() && !req.Amount.Equal(total) {
		log.Printf("CheckoutService: amount mismatch for gateway order %s: sent %s, expected %s",
			req.GatewayOrderID, req.Amount.StringFixed(2), total.StringFixed(2))
		return nil, ErrAmountMismatch
	}

	now := time.Now()
	order := &models.Order{
		OrderID:       req.GatewayOrderID,
		PaymentID:     req.GatewayPaymentID,
		Signature:     req.Signature,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		AddressLine:   req.AddressLine,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		ProductID:     product.ID,
		ProductName:   product.Name,
		Quantity:      qty,
		ProductPrice:  product.SalePrice,
		ShippingFee:   shipping,
		TotalAmount:   total,
		Status:        models.OrderStatusConfirmed,
		PaymentDate:   &now,
	}

	if err := s.orderRepo.CreateConfirmed(ctx, order, req.SessionKey); err != nil {
		switch {
		case errors.Is(err, repositories.ErrInsufficientStock):
			return nil, ErrInsufficientStock
		case errors.Is(err, repositories.ErrDuplicateOrder):
			return nil, ErrDuplicateOrder
		}
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	log.Printf("CheckoutService: order %s confirmed for %s x%d", order.OrderID, product.Slug, qty)
	return order, nil
}
