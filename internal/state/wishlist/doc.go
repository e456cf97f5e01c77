// Package wishlist holds the favourited products of one session.
//
// Membership is keyed by product id and flipped by Toggle. Like the cart, the
// wishlist is not persisted.
package wishlist
