package shop

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"max=64"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"min=0"`
	Sizes       []string        `json:"sizes"`
	ImageURL    string          `json:"image_url" binding:"omitempty,url,max=512"`
	Active      *bool           `json:"active"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=255"`
	Description *string          `json:"description"`
	Category    *string          `json:"category" binding:"omitempty,max=64"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	Sizes       []string         `json:"sizes"`
	ImageURL    *string          `json:"image_url" binding:"omitempty,max=512"`
	Active      *bool            `json:"active"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CartItem is one requested line of a checkout.
type CartItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// QuoteLine is a validated cart line priced from the catalogue.
type QuoteLine struct {
	Product   *Product
	Size      string
	Quantity  int
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines    []QuoteLine
	Subtotal decimal.Decimal
}
