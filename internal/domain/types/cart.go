package types

import "github.com/shopspring/decimal"

// CartItem is one line of the cart. Price is fixed when the line is created.
type CartItem struct {
	ID        ProductID       `json:"id"`
	Title     string          `json:"title"`
	Thumbnail string          `json:"thumbnail"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns price × quantity without rounding.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
