package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sakhi-sarees/storefront/app/utils/calc"
)

type Product struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Slug          string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description   string          `gorm:"type:text" json:"description"`
	Fabric        string          `gorm:"size:100" json:"fabric"`
	Occasion      string          `gorm:"size:100" json:"occasion"`
	CategoryID    string          `gorm:"size:36;index" json:"category_id"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	OriginalPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"original_price"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"sale_price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	IsBestseller  bool            `gorm:"default:false" json:"is_bestseller"`
	IsReadyToWear bool            `gorm:"default:false" json:"is_ready_to_wear"`
	IsWedding     bool            `gorm:"default:false" json:"is_wedding"`
	IsFeatured    bool            `gorm:"default:false" json:"is_featured"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	return
}

// DiscountPercentage is the rounded markdown from the original price,
// zero when no original price is set.
func (p *Product) DiscountPercentage() int {
	return calc.DiscountPercentage(p.OriginalPrice, p.SalePrice)
}

func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}
