package shop

import (
	"time"

	"github.com/shopspring/decimal"

	"academy/internal/domain"
)

type Product struct {
	domain.Document
	Name        string          `json:"name" gorm:"size:255;not null"`
	Slug        string          `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Category    string          `json:"category" gorm:"size:64;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	Sizes       []string        `json:"sizes" gorm:"serializer:json;type:jsonb"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:512"`
	Active      bool            `json:"active" gorm:"not null;default:true;index"`
}

// HasSize reports whether size is orderable. Products without a size list
// take any (usually empty) size.
func (p *Product) HasSize(size string) bool {
	if len(p.Sizes) == 0 {
		return true
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderExpired   OrderStatus = "expired"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

// nextStatus lists the only manual transitions an admin may apply.
var nextStatus = map[OrderStatus]OrderStatus{
	OrderPaid:    OrderShipped,
	OrderShipped: OrderDelivered,
}

type Order struct {
	domain.Document
	UserID    string          `json:"user_id" gorm:"size:36;index;not null"`
	Status    OrderStatus     `json:"status" gorm:"size:16;index;not null"`
	Subtotal  decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2);not null"`
	Discount  decimal.Decimal `json:"discount" gorm:"type:decimal(12,2);not null"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null"`
	Currency  string          `json:"currency" gorm:"size:8;not null"`
	SessionID string          `json:"session_id,omitempty" gorm:"size:255;index"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	Items     []OrderItem     `json:"items" gorm:"foreignKey:OrderID;references:ID"`
}

type OrderItem struct {
	domain.Document
	OrderID    string          `json:"order_id" gorm:"size:36;index;not null"`
	ProductID  string          `json:"product_id" gorm:"size:36;not null"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Size       string          `json:"size,omitempty" gorm:"size:32"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2);not null"`
	LineTotal  decimal.Decimal `json:"line_total" gorm:"type:decimal(12,2);not null"`
	// StockTaken is set once this line's quantity left the product stock.
	StockTaken bool            `json:"-" gorm:"not null;default:false"`
}
