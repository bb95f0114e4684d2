package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// orderTransitions is the forward-only status machine. delivered, cancelled
// and refunded are terminal.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

func ValidOrderStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is created exactly once, at successful payment verification, already
// confirmed. OrderID is the gateway's identifier and is unique.
type Order struct {
	ID      string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID string `gorm:"size:64;not null;uniqueIndex" json:"order_id"`

	CustomerName  string `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:255;not null;index" json:"customer_email"`
	CustomerPhone string `gorm:"size:20;not null;index" json:"customer_phone"`

	AddressLine string `gorm:"size:255;not null" json:"address_line"`
	City        string `gorm:"size:100;not null" json:"city"`
	State       string `gorm:"size:100;not null" json:"state"`
	Pincode     string `gorm:"size:10;not null" json:"pincode"`

	ProductID    string          `gorm:"size:36;not null;index" json:"product_id"`
	Product      *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductName  string          `gorm:"size:255;not null" json:"product_name"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	ProductPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"product_price"`
	ShippingFee  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"shipping_fee"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_amount"`

	PaymentID string `gorm:"size:64;index" json:"payment_id"`
	Signature string `gorm:"size:128" json:"-"`

	Status      string     `gorm:"size:20;not null;default:pending" json:"status"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
