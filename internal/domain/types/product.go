package types

import "github.com/shopspring/decimal"

// Product is a catalog record as served by the product API.
type Product struct {
	ID                 ProductID       `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Category           Category        `json:"category"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Thumbnail          string          `json:"thumbnail"`
}

// FormatAmount renders a currency amount with two decimals, rounding half-up.
// Amounts are never negative, so half-up and half-away-from-zero agree.
func FormatAmount(d decimal.Decimal) string { return d.StringFixed(2) }
