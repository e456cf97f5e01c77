// Package browse assembles the product listings behind the home and product
// detail screens.
//
// Home fetches every configured category concurrently and concatenates the
// results in configuration order; one failed category fails the whole feed.
// Related products are the other members of a product's category, capped at a
// small limit. They are a nice-to-have, so a failure there is logged and
// produces an empty list instead of an error.
package browse
