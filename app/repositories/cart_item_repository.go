package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
)

type CartItemRepositoryImpl interface {
	Add(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, sessionKey, productID string) error
	GetBySessionAndProduct(ctx context.Context, sessionKey, productID string) (*models.CartItem, error)
	GetBySession(ctx context.Context, sessionKey string) ([]models.CartItem, error)
	CountBySession(ctx context.Context, sessionKey string) (int64, error)
	ClearSession(ctx context.Context, tx *gorm.DB, sessionKey string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type CartItemRepository struct {
	DB *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &CartItemRepository{db}
}

func (r *CartItemRepository) Add(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *CartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *CartItemRepository) Delete(ctx context.Context, sessionKey, productID string) error {
	return r.DB.WithContext(ctx).
		Where("session_key = ? AND product_id = ?", sessionKey, productID).
		Delete(&models.CartItem{}).Error
}

func (r *CartItemRepository) GetBySessionAndProduct(ctx context.Context, sessionKey, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("session_key = ? AND product_id = ?", sessionKey, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartItemRepository) GetBySession(ctx context.Context, sessionKey string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("session_key = ?", sessionKey).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *CartItemRepository) CountBySession(ctx context.Context, sessionKey string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("session_key = ?", sessionKey).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&count).Error
	return count, err
}

func (r *CartItemRepository) ClearSession(ctx context.Context, tx *gorm.DB, sessionKey string) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.WithContext(ctx).
		Where("session_key = ?", sessionKey).
		Delete(&models.CartItem{}).Error
}

// DeleteOlderThan removes cart rows whose session outlived the cookie TTL.
func (r *CartItemRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&models.CartItem{})
	return res.RowsAffected, res.Error
}
