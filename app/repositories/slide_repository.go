package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
)

type SlideRepositoryImpl interface {
	ListActive(ctx context.Context, limit int) ([]models.Slide, error)
}

type slideRepository struct {
	db *gorm.DB
}

func NewSlideRepository(db *gorm.DB) SlideRepositoryImpl {
	return &slideRepository{db}
}

func (s *slideRepository) ListActive(ctx context.Context, limit int) ([]models.Slide, error) {
	var slides []models.Slide
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Limit(limit).
		Find(&slides).Error
	return slides, err
}
