package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one line of an anonymous shopper's cart. Ownership is the
// session key alone; one row per (session, product) pair.
type CartItem struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SessionKey string    `gorm:"size:64;not null;uniqueIndex:idx_cart_session_product" json:"-"`
	ProductID  string    `gorm:"size:36;not null;uniqueIndex:idx_cart_session_product" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}

func (ci *CartItem) LineTotal() decimal.Decimal {
	if ci.Product == nil {
		return decimal.Zero
	}
	return ci.Product.SalePrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
