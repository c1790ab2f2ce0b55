package payment

import (
	"github.com/shopspring/decimal"

	"academy/internal/domain/shop"
)

type MembershipCheckoutRequest struct {
	PackageID string `json:"package_id" binding:"required"`
	OriginURL string `json:"origin_url" binding:"required,url"`
}

// ShopCheckoutRequest carries only product ids and quantities; prices and
// discounts are decided server-side.
type ShopCheckoutRequest struct {
	Items     []shop.CartItem `json:"items" binding:"required,min=1,dive"`
	OriginURL string          `json:"origin_url" binding:"required,url"`
}

type CheckoutResponse struct {
	URL       string           `json:"url"`
	SessionID string           `json:"session_id"`
	OrderID   string           `json:"order_id,omitempty"`
	Total     *decimal.Decimal `json:"total,omitempty"`
}
