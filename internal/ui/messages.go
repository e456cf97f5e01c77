package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"clothiq/internal/domain"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 2 * time.Second

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenMain
)

type (
	navigateMsg struct{ to screen }

	// loggedInMsg enters the main tabs.
	loggedInMsg struct{}
	// signedUpMsg returns to login with a notice.
	signedUpMsg struct{}
	loggedOutMsg struct{}

	productsLoadedMsg struct {
		products []domain.Product
		err      error
	}
	relatedLoadedMsg struct {
		id       domain.ProductID
		products []domain.Product
	}
	profileLoadedMsg struct {
		profile domain.Profile
		err     error
	}

	openDetailMsg struct{ product domain.Product }

	toastMsg        struct{ text string }
	toastExpiredMsg struct{ seq int }
)

func navigate(to screen) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

func showToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

func expireToast(seq int) tea.Cmd {
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func loadHome(ctx context.Context, browse domain.BrowseService) tea.Cmd {
	return func() tea.Msg {
		products, err := browse.Home(ctx)
		return productsLoadedMsg{products: products, err: err}
	}
}

func loadRelated(ctx context.Context, browse domain.BrowseService, p domain.Product) tea.Cmd {
	return func() tea.Msg {
		return relatedLoadedMsg{id: p.ID, products: browse.Related(ctx, p)}
	}
}

func loadProfile(ctx context.Context, profiles domain.ProfileService) tea.Cmd {
	return func() tea.Msg {
		p, err := profiles.LoadProfile(ctx)
		return profileLoadedMsg{profile: p, err: err}
	}
}
