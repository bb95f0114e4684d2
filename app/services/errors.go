package services

import "errors"

var (
	ErrInvalidAmount             = errors.New("amount must be greater than zero")
	ErrAmountMismatch            = errors.New("amount does not match the order total")
	ErrPaymentVerificationFailed = errors.New("payment signature verification failed")
	ErrProductNotFound           = errors.New("product not found")
	ErrOutOfStock                = errors.New("requested quantity exceeds available stock")
	ErrInsufficientStock         = errors.New("insufficient product stock")
	ErrNotInCart                 = errors.New("product is not in the cart")
	ErrDuplicateOrder            = errors.New("payment already recorded for this order")
	ErrOrderNotFound             = errors.New("order not found")
)
