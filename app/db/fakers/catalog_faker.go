package fakers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"

	"github.com/sakhi-sarees/storefront/app/models"
)

var fabrics = []string{"Silk", "Cotton", "Georgette", "Chiffon", "Banarasi Silk", "Kanjivaram Silk", "Linen", "Organza"}

var occasions = []string{"Wedding", "Festive", "Party", "Casual", "Office"}

var sareeStyles = []string{"Saree", "Zari Saree", "Handloom Saree", "Printed Saree", "Embroidered Saree"}

func CategoryFaker(name string) *models.Category {
	return &models.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      slug.Make(name),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func ProductFaker(category *models.Category) *models.Product {
	fabric := fabrics[rand.Intn(len(fabrics))]
	name := fmt.Sprintf("%s %s %s", faker.FirstName(), fabric, sareeStyles[rand.Intn(len(sareeStyles))])

	originalPrice := decimal.NewFromInt(int64(rand.Intn(15000) + 800))
	salePrice := originalPrice.Mul(decimal.NewFromFloat(0.6 + rand.Float64()*0.35)).Round(0)

	return &models.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Slug:          slug.Make(name + "-" + uuid.NewString()[:6]),
		Description:   faker.Paragraph(),
		Fabric:        fabric,
		Occasion:      occasions[rand.Intn(len(occasions))],
		CategoryID:    category.ID,
		OriginalPrice: originalPrice,
		SalePrice:     salePrice,
		StockQuantity: rand.Intn(20) + 1,
		IsBestseller:  rand.Intn(4) == 0,
		IsReadyToWear: rand.Intn(5) == 0,
		IsWedding:     rand.Intn(5) == 0,
		IsFeatured:    rand.Intn(3) == 0,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func SlideFaker(order int) *models.Slide {
	title := faker.Sentence()
	return &models.Slide{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  faker.Sentence(),
		ImageDesktop: fmt.Sprintf("/images/slides/slide-%d-desktop.jpg", order),
		ImageMobile:  fmt.Sprintf("/images/slides/slide-%d-mobile.jpg", order),
		LinkURL:      "/category/" + slug.Make(fabrics[rand.Intn(len(fabrics))]),
		DisplayOrder: order,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestimonialFaker(order int) *models.Testimonial {
	return &models.Testimonial{
		ID:           uuid.New().String(),
		Author:       faker.Name(),
		Content:      faker.Paragraph(),
		Rating:       rand.Intn(2) + 4,
		DisplayOrder: order,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
