package ui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"clothiq/internal/domain"
	"clothiq/internal/services/auth"
)

type (
	loginResultMsg  struct{ err error }
	signupResultMsg struct{ err error }
)

// welcomeModel is the landing screen before login.
type welcomeModel struct {
	env *env
}

func (m welcomeModel) Update(msg tea.Msg) (welcomeModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "enter", "l":
		return m, navigate(screenLogin)
	case "s":
		return m, navigate(screenSignup)
	}
	return m, nil
}

func (m welcomeModel) View() string {
	s := m.env.styles
	return strings.Join([]string{
		s.Title.Render("Clothiq"),
		s.Muted.Render("Wear the Vibe."),
		s.Help.Render("enter log in • s sign up • q quit"),
	}, "\n")
}

// loginModel is the "Log In to Clothiq" form.
type loginModel struct {
	env    *env
	form   form
	err    string
	notice string
}

func newLoginModel(e *env) loginModel {
	return loginModel{
		env: e,
		form: newForm(
			field{label: "EMAIL", placeholder: "Enter your email"},
			field{label: "PASSWORD", placeholder: "Enter your password", secret: true},
		),
	}
}

func (m loginModel) submit() tea.Cmd {
	e := m.env
	email, password := m.form.value(0), m.form.value(1)
	return func() tea.Msg {
		_, err := e.app.Auth.Login(e.ctx, email, password)
		return loginResultMsg{err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		if msg.err != nil {
			m.err = loginFailure(msg.err)
			m.env.log.Info("login failed", zap.Error(msg.err))
			return m, nil
		}
		m.form.reset()
		m.err, m.notice = "", ""
		return m, func() tea.Msg { return loggedInMsg{} }
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m, m.form.move(1)
		case "shift+tab", "up":
			return m, m.form.move(-1)
		case "enter":
			return m, m.submit()
		case "ctrl+n":
			return m, navigate(screenSignup)
		case "esc":
			return m, navigate(screenWelcome)
		}
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	s := m.env.styles
	var sb strings.Builder
	sb.WriteString(s.Header.Render("Log In to Clothiq"))
	sb.WriteString("\n")
	if m.notice != "" {
		sb.WriteString(s.Discount.Render(m.notice) + "\n\n")
	}
	sb.WriteString(m.form.view(s))
	if m.err != "" {
		sb.WriteString(s.Error.Render(m.err) + "\n")
	}
	sb.WriteString(s.Help.Render("enter log in • tab next field • ctrl+n create an account • esc back"))
	return sb.String()
}

func loginFailure(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Login Failed: Incorrect email or password."
	case errors.Is(err, auth.ErrNoUser):
		return "Login Failed: No user found. Please sign up first."
	default:
		return "Something went wrong. Try again."
	}
}

// signupModel is the "Sign Up to Clothiq" form.
type signupModel struct {
	env  *env
	form form
	err  string
}

func newSignupModel(e *env) signupModel {
	return signupModel{
		env: e,
		form: newForm(
			field{label: "FIRST NAME", placeholder: "First Name"},
			field{label: "LAST NAME", placeholder: "Last Name"},
			field{label: "MOBILE", placeholder: "Mobile Number"},
			field{label: "EMAIL", placeholder: "Enter your email"},
			field{label: "PASSWORD", placeholder: "Password", secret: true},
		),
	}
}

func (m signupModel) submit() tea.Cmd {
	e := m.env
	req := domain.SignupRequest{
		FirstName: m.form.value(0),
		LastName:  m.form.value(1),
		Mobile:    m.form.value(2),
		Email:     m.form.value(3),
		Password:  m.form.value(4),
	}
	return func() tea.Msg {
		return signupResultMsg{err: e.app.Auth.Signup(e.ctx, req)}
	}
}

func (m signupModel) Update(msg tea.Msg) (signupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signupResultMsg:
		switch {
		case errors.Is(msg.err, auth.ErrMissingFields):
			m.err = "All fields are required!"
			return m, nil
		case msg.err != nil:
			m.err = "Something went wrong. Try again."
			m.env.log.Error("signup failed", zap.Error(msg.err))
			return m, nil
		}
		m.form.reset()
		m.err = ""
		return m, func() tea.Msg { return signedUpMsg{} }
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return m, m.form.move(1)
		case "shift+tab", "up":
			return m, m.form.move(-1)
		case "enter":
			return m, m.submit()
		case "esc":
			return m, navigate(screenLogin)
		}
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m signupModel) View() string {
	s := m.env.styles
	var sb strings.Builder
	sb.WriteString(s.Header.Render("Sign Up to Clothiq"))
	sb.WriteString("\n")
	sb.WriteString(m.form.view(s))
	if m.err != "" {
		sb.WriteString(s.Error.Render(m.err) + "\n")
	}
	sb.WriteString(s.Help.Render("enter create account • tab next field • esc log in"))
	return sb.String()
}
