package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
	"github.com/sakhi-sarees/storefront/app/repositories"
	"github.com/sakhi-sarees/storefront/app/utils/calc"
)

type CartService struct {
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartTotals struct {
	Items    []models.CartItem
	Count    int64
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// AddItem inserts a new line or merges into an existing one. A first add
// beyond stock is rejected; a repeat add clamps to stock silently.
func (s *CartService) AddItem(ctx context.Context, sessionKey, productID string, qty int) (*models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	existing, err := s.cartItemRepo.GetBySessionAndProduct(ctx, sessionKey, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existing == nil {
		if qty > product.StockQuantity {
			return nil, ErrOutOfStock
		}
		item := &models.CartItem{
			SessionKey: sessionKey,
			ProductID:  productID,
			Quantity:   qty,
		}
		if err := s.cartItemRepo.Add(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
		item.Product = product
		return item, nil
	}

	existing.Quantity += qty
	if existing.Quantity > product.StockQuantity {
		existing.Quantity = product.StockQuantity
	}
	if err := s.cartItemRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	existing.Product = product
	return existing, nil
}

func (s *CartService) UpdateItem(ctx context.Context, sessionKey, productID string, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(ctx, sessionKey, productID)
	}

	item, err := s.cartItemRepo.GetBySessionAndProduct(ctx, sessionKey, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInCart
		}
		return fmt.Errorf("failed to get cart item: %w", err)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to get product: %w", err)
	}

	if qty > product.StockQuantity {
		return ErrInsufficientStock
	}

	item.Quantity = qty
	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", err)
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionKey, productID string) error {
	_, err := s.cartItemRepo.GetBySessionAndProduct(ctx, sessionKey, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInCart
		}
		return fmt.Errorf("failed to get cart item: %w", err)
	}

	if err := s.cartItemRepo.Delete(ctx, sessionKey, productID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

func (s *CartService) ItemCount(ctx context.Context, sessionKey string) (int64, error) {
	return s.cartItemRepo.CountBySession(ctx, sessionKey)
}

// Totals computes subtotal over sale prices, the flat shipping fee (waived
// above the free-shipping threshold) and the grand total.
func (s *CartService) Totals(ctx context.Context, sessionKey string) (*CartTotals, error) {
	items, err := s.cartItemRepo.GetBySession(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}

	totals := &CartTotals{
		Items:    items,
		Subtotal: decimal.Zero,
	}
	for i := range items {
		totals.Count += int64(items[i].Quantity)
		totals.Subtotal = totals.Subtotal.Add(items[i].LineTotal())
	}
	totals.Shipping = decimal.Zero
	if len(items) > 0 {
		totals.Shipping = calc.ShippingCost(totals.Subtotal)
	}
	totals.Total = totals.Subtotal.Add(totals.Shipping)
	return totals, nil
}
