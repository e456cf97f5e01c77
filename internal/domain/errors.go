package domain

import "errors"

var (
	// ErrProductNotFound is returned by a Catalog for an unknown product id.
	ErrProductNotFound = errors.New("product not found")
)
