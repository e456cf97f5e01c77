// Package catalog provides an HTTP implementation of the domain.Catalog
// interface backed by a DummyJSON-compatible product API.
//
// Supported operations:
//   - Listing the products of a category (GET /products/category/{slug}).
//   - Fetching one product by id (GET /products/{id}).
//
// Requests carry the caller's context for cancellation and deadlines. Non-2xx
// statuses are returned as errors naming the method, path and status text; a
// 404 for a single product maps to domain.ErrProductNotFound. There are no
// retries: failures go straight back to the screen that asked.
package catalog
