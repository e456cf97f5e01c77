package app

import (
	"clothiq/internal/domain"
	"clothiq/internal/state"
)

// App is what screens and commands work with: the services plus the
// session's cart and wishlist.
type App struct {
	Auth    domain.AuthService
	Profile domain.ProfileService
	Browse  domain.BrowseService
	Session *state.Session
}

func New(
	auth domain.AuthService,
	profile domain.ProfileService,
	browse domain.BrowseService,
	session *state.Session,
) *App {
	return &App{
		Auth:    auth,
		Profile: profile,
		Browse:  browse,
		Session: session,
	}
}
