package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
	"github.com/sakhi-sarees/storefront/app/repositories"
)

type OrderService struct {
	orderRepo repositories.OrderRepositoryImpl
}

func NewOrderService(orderRepo repositories.OrderRepositoryImpl) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *OrderService) History(ctx context.Context, email, phone string) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByContact(ctx, email, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// Track looks an order up by id and requires the matching contact email so a
// guessed order id alone reveals nothing.
func (s *OrderService) Track(ctx context.Context, orderID, email string) (*models.Order, error) {
	order, err := s.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(order.CustomerEmail, email) {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
