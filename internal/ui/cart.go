package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"clothiq/internal/domain"
)

// cartModel renders the session cart. It keeps no copy of the lines.
type cartModel struct {
	env    *env
	cursor int
}

func (m cartModel) Update(msg tea.Msg) (cartModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	items := m.env.app.Session.Cart.Items()
	switch key.String() {
	case "up", "k":
		m.cursor = clamp(m.cursor-1, len(items))
	case "down", "j":
		m.cursor = clamp(m.cursor+1, len(items))
	case "d", "delete":
		if len(items) == 0 {
			return m, nil
		}
		id := items[clamp(m.cursor, len(items))].ID
		cmd := m.env.removeFromCart(id)
		m.cursor = clamp(m.cursor, len(items)-1)
		return m, cmd
	}
	return m, nil
}

func (m cartModel) View() string {
	s := m.env.styles
	items := m.env.app.Session.Cart.Items()
	var sb strings.Builder
	sb.WriteString(s.Header.Render("My Cart"))
	sb.WriteString("\n")

	if len(items) == 0 {
		sb.WriteString(s.Muted.Render("Your cart is empty") + "\n")
		return sb.String()
	}

	cursor := clamp(m.cursor, len(items))
	for i, it := range items {
		sb.WriteString(m.line(it, i == cursor))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(s.Price.Render("Total: " + money(m.env.app.Session.Cart.Total())))
	sb.WriteString("\n")
	sb.WriteString(s.Help.Render("d remove"))
	return sb.String()
}

func (m cartModel) line(it domain.CartItem, selected bool) string {
	s := m.env.styles
	title := it.Title
	marker := "  "
	if selected {
		marker, title = s.Selected.Render("> "), s.Selected.Render(it.Title)
	}
	return fmt.Sprintf("%s%s  %s  %s x %d  %s",
		marker,
		title,
		s.Muted.Render(fmt.Sprintf("Qty: %d", it.Quantity)),
		money(it.Price),
		it.Quantity,
		s.Price.Render(money(it.Subtotal())),
	)
}
