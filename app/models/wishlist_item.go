package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistItem struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	SessionKey string    `gorm:"size:64;not null;uniqueIndex:idx_wishlist_session_product" json:"-"`
	ProductID  string    `gorm:"size:36;not null;uniqueIndex:idx_wishlist_session_product" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (wi *WishlistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if wi.ID == "" {
		wi.ID = uuid.New().String()
	}
	return
}
