package migrations

import (
	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/models"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.Slide{},
		&models.Testimonial{},
	)
}
