package services

import "errors"

// Failure modes surfaced by the service layer. Handlers translate these to
// HTTP statuses with errors.Is; anything else is an unexpected storage error.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrDanglingSale      = errors.New("sale references a deleted product")
)
