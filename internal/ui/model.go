package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"clothiq/internal/app"
)

type tab int

const (
	tabHome tab = iota
	tabCart
	tabProfile
	tabCount
)

var tabNames = [tabCount]string{"Home", "Cart", "Profile"}

type sessionCheckedMsg struct{ loggedIn bool }

// Model is the root bubbletea model.
type Model struct {
	env *env

	screen  screen
	welcome welcomeModel
	login   loginModel
	signup  signupModel

	tab     tab
	home    homeModel
	cart    cartModel
	profile profileModel
	details []detailModel

	toast    string
	toastSeq int

	width, height int
}

// New returns the root model. Nothing is loaded until Init runs.
func New(ctx context.Context, a *app.App, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	e := &env{ctx: ctx, app: a, log: log, styles: DefaultStyles()}
	return Model{
		env:     e,
		screen:  screenWelcome,
		welcome: welcomeModel{env: e},
		login:   newLoginModel(e),
		signup:  newSignupModel(e),
		home:    newHomeModel(e),
		cart:    cartModel{env: e},
		profile: newProfileModel(e),
	}
}

// Run starts the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, a *app.App, log *zap.Logger) error {
	p := tea.NewProgram(New(ctx, a, log), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init checks for a stored session so that a logged-in user skips the auth
// screens.
func (m Model) Init() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		ok, err := e.app.Auth.LoggedIn(e.ctx)
		if err != nil {
			e.log.Warn("session check", zap.Error(err))
		}
		return sessionCheckedMsg{loggedIn: ok}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.home.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case sessionCheckedMsg:
		if msg.loggedIn {
			return m.enterMain()
		}
		return m, nil
	case navigateMsg:
		m.screen = msg.to
		return m, nil
	case loggedInMsg:
		return m.enterMain()
	case signedUpMsg:
		m.screen = screenLogin
		m.login.notice = "Signup successful. Please login."
		return m, nil
	case loggedOutMsg:
		m.screen = screenWelcome
		m.details = nil
		m.tab = tabHome
		return m, nil

	case toastMsg:
		m.toastSeq++
		m.toast = msg.text
		return m, expireToast(m.toastSeq)
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case openDetailMsg:
		d := newDetailModel(m.env, msg.product)
		m.details = append(m.details, d)
		return m, d.Init()
	case relatedLoadedMsg:
		for i := range m.details {
			m.details[i], _ = m.details[i].Update(msg)
		}
		return m, nil

	case productsLoadedMsg, spinner.TickMsg:
		m.home, cmd = m.home.Update(msg)
		return m, cmd
	case profileLoadedMsg, profileSavedMsg, imageSetMsg, logoutResultMsg:
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd
	case loginResultMsg:
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	case signupResultMsg:
		m.signup, cmd = m.signup.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenWelcome:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		m.welcome, cmd = m.welcome.Update(msg)
		return m, cmd
	case screenLogin:
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	case screenSignup:
		m.signup, cmd = m.signup.Update(msg)
		return m, cmd
	}

	if n := len(m.details); n > 0 {
		if msg.String() == "esc" {
			m.details = m.details[:n-1]
			return m, nil
		}
		m.details[n-1], cmd = m.details[n-1].Update(msg)
		return m, cmd
	}

	if m.tab == tabProfile && m.profile.capturing() {
		m.profile, cmd = m.profile.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case "1", "2", "3":
		m.tab = tab(msg.String()[0] - '1')
		return m, nil
	}

	switch m.tab {
	case tabHome:
		m.home, cmd = m.home.Update(msg)
	case tabCart:
		m.cart, cmd = m.cart.Update(msg)
	case tabProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	return m, cmd
}

func (m Model) enterMain() (tea.Model, tea.Cmd) {
	m.screen = screenMain
	m.tab = tabHome
	m.details = nil
	return m, tea.Batch(m.home.load(), loadProfile(m.env.ctx, m.env.app.Profile))
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenSignup:
		body = m.signup.View()
	default:
		body = m.mainView()
	}
	if m.toast != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.env.styles.Toast.Render(m.toast))
	}
	return body
}

func (m Model) mainView() string {
	s := m.env.styles
	if n := len(m.details); n > 0 {
		return m.details[n-1].View()
	}

	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		label := name
		if tab(i) == tabCart {
			if c := m.env.app.Session.Cart.Count(); c > 0 {
				label = name + " (" + strconv.Itoa(c) + ")"
			}
		}
		if tab(i) == m.tab {
			tabs = append(tabs, s.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, s.Tab.Render(label))
		}
	}

	var content string
	switch m.tab {
	case tabHome:
		content = m.home.View()
	case tabCart:
		content = m.cart.View()
	case tabProfile:
		content = m.profile.View()
	}
	return strings.Join([]string{
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		content,
		s.Help.Render("tab switch • 1-3 jump • q quit"),
	}, "\n")
}
