package state

import "clothiq/internal/domain"

// Intent is a user action on session state. The set is closed: only the
// types in this file implement it.
type Intent interface {
	intent()
}

// Add puts one unit of Product in the cart.
type Add struct {
	Product domain.Product
}

// Remove drops the cart line for ID.
type Remove struct {
	ID domain.ProductID
}

// Toggle flips wishlist membership of Product.
type Toggle struct {
	Product domain.Product
}

func (Add) intent()    {}
func (Remove) intent() {}
func (Toggle) intent() {}
