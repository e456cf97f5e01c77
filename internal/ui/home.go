package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"clothiq/internal/domain"
)

// homeModel lists the home feed.
type homeModel struct {
	env      *env
	spinner  spinner.Model
	loading  bool
	err      string
	products []domain.Product
	cursor   int
	height   int
}

func newHomeModel(e *env) homeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = e.styles.Selected
	return homeModel{env: e, spinner: sp}
}

// load starts fetching the feed.
func (m *homeModel) load() tea.Cmd {
	m.loading = true
	m.err = ""
	return tea.Batch(m.spinner.Tick, loadHome(m.env.ctx, m.env.app.Browse))
}

// SetSize updates the visible height.
func (m *homeModel) SetSize(_, h int) { m.height = h }

func (m homeModel) selected() (domain.Product, bool) {
	if m.cursor < 0 || m.cursor >= len(m.products) {
		return domain.Product{}, false
	}
	return m.products[m.cursor], true
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case productsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = "Failed to load products"
			m.env.log.Error("home feed", zap.Error(msg.err))
			return m, nil
		}
		m.products = msg.products
		m.cursor = clamp(m.cursor, len(m.products))
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = clamp(m.cursor-1, len(m.products))
		case "down", "j":
			m.cursor = clamp(m.cursor+1, len(m.products))
		case "r":
			return m, m.load()
		case "enter":
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg { return openDetailMsg{product: p} }
			}
		case "a":
			if p, ok := m.selected(); ok {
				return m, m.env.addToCart(p)
			}
		case "f":
			if p, ok := m.selected(); ok {
				m.env.toggleWishlist(p)
			}
		}
	}
	return m, nil
}

func (m homeModel) View() string {
	s := m.env.styles
	var sb strings.Builder
	sb.WriteString(s.Header.Render("Discover"))
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(m.spinner.View() + " Loading products...\n")
	case m.err != "":
		sb.WriteString(s.Error.Render(m.err) + "\n")
	case len(m.products) == 0:
		sb.WriteString(s.Muted.Render("No products.") + "\n")
	default:
		start, end := window(m.cursor, len(m.products), m.height-6)
		for i := start; i < end; i++ {
			sb.WriteString(m.row(m.products[i], i == m.cursor))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(s.Help.Render("enter details • a add to cart • f wishlist • r refresh"))
	return sb.String()
}

func (m homeModel) row(p domain.Product, selected bool) string {
	s := m.env.styles
	marker, title := "  ", p.Title
	if selected {
		marker, title = s.Selected.Render("> "), s.Selected.Render(p.Title)
	}
	return fmt.Sprintf("%s%s %s %s  %s  %s  %s",
		marker,
		m.env.heart(p.ID),
		s.Discount.Render(fmt.Sprintf("-%.0f%%", p.DiscountPercentage)),
		title,
		s.Muted.Render(fmt.Sprintf("★ %.1f", p.Rating)),
		s.Muted.Render(fmt.Sprintf("stock %d", p.Stock)),
		s.Price.Render(money(p.Price)),
	)
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// window returns the [start, end) range of rows to draw so that cursor stays
// visible within height rows. A non-positive height draws everything.
func window(cursor, n, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}
