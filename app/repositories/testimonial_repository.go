package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
)

type TestimonialRepositoryImpl interface {
	ListActive(ctx context.Context) ([]models.Testimonial, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepositoryImpl {
	return &testimonialRepository{db}
}

func (t *testimonialRepository) ListActive(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := t.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&testimonials).Error
	return testimonials, err
}
