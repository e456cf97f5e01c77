package types

import "strconv"

// ProductID identifies a catalog product.
type ProductID int64

// String returns the decimal form of the identifier.
func (id ProductID) String() string { return strconv.FormatInt(int64(id), 10) }

// Valid reports whether id can refer to a catalog product.
func (id ProductID) Valid() bool { return id > 0 }

// Category is a catalog category slug such as "mens-shirts".
type Category string

// String returns the string form of the category.
func (c Category) String() string { return string(c) }

// SessionToken marks a logged-in local session.
type SessionToken string

// String returns the string form of the token.
func (t SessionToken) String() string { return string(t) }
