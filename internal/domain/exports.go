package domain

import (
	interfaces "clothiq/internal/domain/interfaces"
	types "clothiq/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ProductID    = types.ProductID
	Category     = types.Category
	SessionToken = types.SessionToken
	Product      = types.Product
	CartItem     = types.CartItem
	User         = types.User
	Profile      = types.Profile
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyValueStore  = interfaces.KeyValueStore
	AccountStore   = interfaces.AccountStore
	Catalog        = interfaces.Catalog
	AuthService    = interfaces.AuthService
	ProfileService = interfaces.ProfileService
	BrowseService  = interfaces.BrowseService
	SignupRequest  = interfaces.SignupRequest
	ProfileUpdate  = interfaces.ProfileUpdate
)

// Helpers re-exported from the types subpackage.
var (
	FormatAmount   = types.FormatAmount
	NormalizeEmail = types.NormalizeEmail
)
