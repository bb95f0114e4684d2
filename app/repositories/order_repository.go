package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
)

type OrderRepositoryImpl interface {
	// CreateConfirmed persists the order, decrements the product's stock and
	// clears the session's cart in one transaction. The conditional stock
	// update fails the whole call when inventory ran out.
	CreateConfirmed(ctx context.Context, order *models.Order, sessionKey string) error
	GetByOrderID(ctx context.Context, orderID string) (*models.Order, error)
	FindByContact(ctx context.Context, email, phone string) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (r *orderRepository) CreateConfirmed(ctx context.Context, order *models.Order, sessionKey string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock_quantity >= ?", order.ProductID, order.Quantity).
			UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", order.Quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		if err := tx.Create(order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateOrder
			}
			return err
		}

		if sessionKey != "" {
			if err := tx.Where("session_key = ?", sessionKey).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByContact(ctx context.Context, email, phone string) ([]models.Order, error) {
	var orders []models.Order
	q := r.db.WithContext(ctx).Preload("Product")
	switch {
	case email != "" && phone != "":
		q = q.Where("customer_email = ? OR customer_phone = ?", email, phone)
	case email != "":
		q = q.Where("customer_email = ?", email)
	case phone != "":
		q = q.Where("customer_phone = ?", phone)
	default:
		return nil, nil
	}
	err := q.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus applies an admin-driven transition, rejecting jumps the
// transition table does not allow. shipped and delivered stamp timestamps.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error) {
	var order models.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).First(&order).Error; err != nil {
			return err
		}

		if !models.CanTransition(order.Status, newStatus) {
			return models.ErrInvalidTransition
		}

		now := time.Now()
		order.Status = newStatus
		switch newStatus {
		case models.OrderStatusShipped:
			order.ShippedAt = &now
		case models.OrderStatusDelivered:
			order.DeliveredAt = &now
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
