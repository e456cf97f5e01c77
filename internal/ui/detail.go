package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"clothiq/internal/domain"
)

// detailModel shows one product and its related products.
type detailModel struct {
	env     *env
	product domain.Product
	related []domain.Product
	loaded  bool
	cursor  int
}

func newDetailModel(e *env, p domain.Product) detailModel {
	return detailModel{env: e, product: p}
}

func (m detailModel) Init() tea.Cmd {
	return loadRelated(m.env.ctx, m.env.app.Browse, m.product)
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case relatedLoadedMsg:
		if msg.id == m.product.ID {
			m.related = msg.products
			m.loaded = true
			m.cursor = clamp(m.cursor, len(m.related))
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			return m, m.env.addToCart(m.product)
		case "f":
			m.env.toggleWishlist(m.product)
		case "up", "k":
			m.cursor = clamp(m.cursor-1, len(m.related))
		case "down", "j":
			m.cursor = clamp(m.cursor+1, len(m.related))
		case "enter":
			if m.cursor < len(m.related) {
				p := m.related[m.cursor]
				return m, func() tea.Msg { return openDetailMsg{product: p} }
			}
		}
	}
	return m, nil
}

func (m detailModel) View() string {
	s := m.env.styles
	p := m.product
	var sb strings.Builder

	sb.WriteString(s.Title.Render(p.Title) + " " + m.env.heart(p.ID) + "\n")
	sb.WriteString(s.Muted.Render(strings.ToUpper(p.Category.String())) + "\n\n")
	sb.WriteString(s.Price.Render(money(p.Price)))
	sb.WriteString("  " + s.Discount.Render(fmt.Sprintf("%.0f%% off", p.DiscountPercentage)))
	sb.WriteString("  " + s.Muted.Render(fmt.Sprintf("★ %.1f / 5", p.Rating)) + "\n\n")

	sb.WriteString(s.Header.Render("Product Description") + "\n")
	sb.WriteString(p.Description + "\n\n")

	sb.WriteString(s.Header.Render("Related Products") + "\n")
	switch {
	case !m.loaded:
		sb.WriteString(s.Muted.Render("Loading...") + "\n")
	case len(m.related) == 0:
		sb.WriteString(s.Muted.Render("Nothing related.") + "\n")
	default:
		for i, r := range m.related {
			line := fmt.Sprintf("%s  %s", r.Title, money(r.Price))
			if i == m.cursor {
				sb.WriteString(s.Selected.Render("> "+line) + "\n")
			} else {
				sb.WriteString("  " + line + "\n")
			}
		}
	}

	sb.WriteString(s.Help.Render("a add to cart • f wishlist • enter open related • esc back"))
	return sb.String()
}
