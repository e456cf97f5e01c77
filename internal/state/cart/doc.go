// Package cart holds the in-memory shopping cart for one session.
//
// The cart is an ordered list of lines keyed by product id. Adding a product
// that is already in the cart bumps its quantity in place; removing drops the
// whole line. The total is recomputed from the lines on every read with exact
// decimal arithmetic and rounded half-up to cents only when formatted.
//
// Nothing here is persisted: a new process starts with an empty cart.
package cart
