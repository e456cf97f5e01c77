package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"clothiq/internal/app"
	"clothiq/internal/domain"
	"clothiq/internal/state"
)

// env is shared by every screen of one Model.
type env struct {
	ctx    context.Context
	app    *app.App
	log    *zap.Logger
	styles Styles
}

func (e *env) addToCart(p domain.Product) tea.Cmd {
	if err := e.app.Session.Dispatch(state.Add{Product: p}); err != nil {
		return showToast("Could not add to cart")
	}
	return showToast("Added to cart")
}

func (e *env) removeFromCart(id domain.ProductID) tea.Cmd {
	_ = e.app.Session.Dispatch(state.Remove{ID: id})
	return showToast("Removed from cart")
}

func (e *env) toggleWishlist(p domain.Product) {
	_ = e.app.Session.Dispatch(state.Toggle{Product: p})
}

func (e *env) heart(id domain.ProductID) string {
	if e.app.Session.IsFavorited(id) {
		return e.styles.Heart.Render("♥")
	}
	return e.styles.Muted.Render("♡")
}

func money(d decimal.Decimal) string { return "$" + domain.FormatAmount(d) }
