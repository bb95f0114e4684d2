package repositories

import "errors"

var (
	// ErrInsufficientStock is returned when the conditional stock decrement
	// matches no row, i.e. another order already took the remaining units.
	ErrInsufficientStock = errors.New("insufficient product stock")

	// ErrDuplicateOrder is returned when an order with the same gateway
	// order id already exists.
	ErrDuplicateOrder = errors.New("order already recorded for this gateway order id")
)
