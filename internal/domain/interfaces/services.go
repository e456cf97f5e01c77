package interfaces

import (
	"context"

	domaintypes "clothiq/internal/domain/types"
)

// SignupRequest carries the fields collected by the signup form.
type SignupRequest struct {
	FirstName string
	LastName  string
	Mobile    string
	Email     string
	Password  string
}

// ProfileUpdate carries edited profile fields. Empty fields are left unchanged.
type ProfileUpdate struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

// AuthService registers the local account and manages the login session.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) error
	Login(ctx context.Context, email, password string) (domaintypes.SessionToken, error)
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) (bool, error)
}

// ProfileService reads and edits the local account profile.
type ProfileService interface {
	LoadProfile(ctx context.Context) (domaintypes.Profile, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (domaintypes.Profile, error)
	SetProfileImage(ctx context.Context, ref string) error
}

// BrowseService assembles the product listings shown by the screens.
type BrowseService interface {
	Home(ctx context.Context) ([]domaintypes.Product, error)
	ProductsByCategory(
		ctx context.Context,
		category domaintypes.Category,
	) ([]domaintypes.Product, error)
	Product(ctx context.Context, id domaintypes.ProductID) (domaintypes.Product, error)
	Related(ctx context.Context, product domaintypes.Product) []domaintypes.Product
}
