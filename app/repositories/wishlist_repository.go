package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
)

type WishlistRepositoryImpl interface {
	// Add inserts the (session, product) pair, reporting whether a new row
	// was created. Repeat adds are a no-op, not an error.
	Add(ctx context.Context, sessionKey, productID string) (bool, error)
	Delete(ctx context.Context, sessionKey, productID string) (bool, error)
	GetBySession(ctx context.Context, sessionKey string) ([]models.WishlistItem, error)
	CountBySession(ctx context.Context, sessionKey string) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type WishlistRepository struct {
	DB *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepositoryImpl {
	return &WishlistRepository{db}
}

func (r *WishlistRepository) Add(ctx context.Context, sessionKey, productID string) (bool, error) {
	var existing models.WishlistItem
	err := r.DB.WithContext(ctx).
		Where("session_key = ? AND product_id = ?", sessionKey, productID).
		First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	item := models.WishlistItem{SessionKey: sessionKey, ProductID: productID}
	if err := r.DB.WithContext(ctx).Create(&item).Error; err != nil {
		// A concurrent add may have raced past the lookup.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *WishlistRepository) Delete(ctx context.Context, sessionKey, productID string) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("session_key = ? AND product_id = ?", sessionKey, productID).
		Delete(&models.WishlistItem{})
	return res.RowsAffected > 0, res.Error
}

func (r *WishlistRepository) GetBySession(ctx context.Context, sessionKey string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("session_key = ?", sessionKey).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *WishlistRepository) CountBySession(ctx context.Context, sessionKey string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("session_key = ?", sessionKey).
		Count(&count).Error
	return count, err
}

func (r *WishlistRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.WishlistItem{})
	return res.RowsAffected, res.Error
}
