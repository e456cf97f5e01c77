package interfaces

import (
	"context"

	domaintypes "clothiq/internal/domain/types"
)

// Catalog is the read-only product API.
type Catalog interface {
	ProductsByCategory(
		ctx context.Context,
		category domaintypes.Category,
	) ([]domaintypes.Product, error)
	Product(ctx context.Context, id domaintypes.ProductID) (domaintypes.Product, error)
}
