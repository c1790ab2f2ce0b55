package shop

import "academy/internal/pkg/apperr"

var (
	ErrProductNotFound   = apperr.NotFound("PRODUCT_NOT_FOUND", "Product not found")
	ErrOrderNotFound     = apperr.NotFound("ORDER_NOT_FOUND", "Order not found")
	ErrInsufficientStock = apperr.Conflict("INSUFFICIENT_STOCK", "Not enough stock for this product")
	ErrInvalidQuantity   = apperr.Validation("INVALID_QUANTITY", "Quantity must be positive")
	ErrInvalidSize       = apperr.Validation("INVALID_SIZE", "Size is not available for this product")
	ErrInvalidPrice      = apperr.Validation("INVALID_PRICE", "Price must be positive")
	ErrInvalidStatus     = apperr.Validation("INVALID_STATUS", "Unknown order status")
	ErrInvalidTransition = apperr.Conflict("INVALID_TRANSITION", "Order cannot move to this status")
	ErrEmptyCart         = apperr.Validation("EMPTY_CART", "At least one item is required")
)
