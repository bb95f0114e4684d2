package seeders

import (
	"log"

	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/db/fakers"
	"github.com/sakhi-sarees/storefront/app/models"
)

var categoryNames = []string{
	"Silk Sarees",
	"Cotton Sarees",
	"Banarasi Sarees",
	"Kanjivaram Sarees",
	"Designer Sarees",
	"Daily Wear",
}

const productsPerCategory = 8

func DBSeed(db *gorm.DB) error {
	for _, name := range categoryNames {
		category := fakers.CategoryFaker(name)
		if err := db.FirstOrCreate(category, models.Category{Slug: category.Slug}).Error; err != nil {
			return err
		}

		for i := 0; i < productsPerCategory; i++ {
			product := fakers.ProductFaker(category)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded category %q with %d products", category.Name, productsPerCategory)
	}

	for i := 1; i <= 4; i++ {
		if err := db.Create(fakers.SlideFaker(i)).Error; err != nil {
			return err
		}
	}
	for i := 1; i <= 6; i++ {
		if err := db.Create(fakers.TestimonialFaker(i)).Error; err != nil {
			return err
		}
	}

	return nil
}
