package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"clothiq/internal/domain"
	"clothiq/internal/services/profile"
)

type profileMode int

const (
	profileViewing profileMode = iota
	profileEditing
	profileImage
)

type (
	profileSavedMsg struct {
		profile domain.Profile
		err     error
	}
	imageSetMsg struct {
		ref string
		err error
	}
	logoutResultMsg struct{ err error }
)

var profileFields = []string{"Name", "Email", "Mobile", "Password"}

// profileModel shows and edits the local account.
type profileModel struct {
	env    *env
	saved  domain.Profile
	draft  domain.Profile
	err    string
	cursor int
	mode   profileMode
	input  textinput.Model
}

func newProfileModel(e *env) profileModel {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Cursor.SetMode(cursor.CursorStatic)
	return profileModel{env: e, input: ti}
}

// capturing reports whether key presses belong to the text input.
func (m profileModel) capturing() bool { return m.mode != profileViewing }

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			m.err = "Could not load profile."
			m.env.log.Warn("load profile", zap.Error(msg.err))
			return m, nil
		}
		m.saved, m.draft, m.err = msg.profile, msg.profile, ""
		return m, nil
	case profileSavedMsg:
		if msg.err != nil {
			m.err = "Could not save profile."
			m.env.log.Error("save profile", zap.Error(msg.err))
			return m, nil
		}
		m.saved, m.draft, m.err = msg.profile, msg.profile, ""
		return m, showToast("Profile information updated.")
	case imageSetMsg:
		if msg.err != nil {
			m.err = "Could not set picture."
			if errors.Is(msg.err, profile.ErrImageNotFound) {
				m.err = "Image not found."
			}
			return m, nil
		}
		return m, loadProfile(m.env.ctx, m.env.app.Profile)
	case logoutResultMsg:
		if msg.err != nil {
			m.err = "Something went wrong. Try again."
			m.env.log.Error("logout", zap.Error(msg.err))
			return m, nil
		}
		return m, tea.Batch(
			showToast("You have been successfully logged out."),
			func() tea.Msg { return loggedOutMsg{} },
		)
	case tea.KeyMsg:
		if m.capturing() {
			return m.updateInput(msg)
		}
		switch msg.String() {
		case "up", "k":
			m.cursor = clamp(m.cursor-1, len(profileFields))
		case "down", "j":
			m.cursor = clamp(m.cursor+1, len(profileFields))
		case "e", "enter":
			m.mode = profileEditing
			m.input.Reset()
			m.input.Placeholder = ""
			m.input.SetValue(m.fieldValue(m.cursor))
			m.input.EchoMode = textinput.EchoNormal
			return m, m.input.Focus()
		case "i":
			m.mode = profileImage
			m.input.Reset()
			m.input.Placeholder = "path or URL"
			m.input.EchoMode = textinput.EchoNormal
			return m, m.input.Focus()
		case "s":
			return m, m.save()
		case "o":
			return m, m.logout()
		}
	}
	return m, nil
}

func (m profileModel) updateInput(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = profileViewing
		m.input.Blur()
		return m, nil
	case "enter":
		value := m.input.Value()
		mode := m.mode
		m.mode = profileViewing
		m.input.Blur()
		if mode == profileImage {
			return m, m.setImage(value)
		}
		m.setField(m.cursor, value)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m profileModel) fieldValue(i int) string {
	switch i {
	case 0:
		return m.draft.Name
	case 1:
		return m.draft.Email
	case 2:
		return m.draft.Mobile
	default:
		return m.draft.Password
	}
}

func (m *profileModel) setField(i int, v string) {
	switch i {
	case 0:
		m.draft.Name = v
	case 1:
		m.draft.Email = v
	case 2:
		m.draft.Mobile = v
	default:
		m.draft.Password = v
	}
}

func (m profileModel) save() tea.Cmd {
	e := m.env
	update := domain.ProfileUpdate{
		Name:     m.draft.Name,
		Email:    m.draft.Email,
		Mobile:   m.draft.Mobile,
		Password: m.draft.Password,
	}
	return func() tea.Msg {
		p, err := e.app.Profile.UpdateProfile(e.ctx, update)
		return profileSavedMsg{profile: p, err: err}
	}
}

func (m profileModel) setImage(ref string) tea.Cmd {
	e := m.env
	return func() tea.Msg {
		return imageSetMsg{ref: ref, err: e.app.Profile.SetProfileImage(e.ctx, ref)}
	}
}

func (m profileModel) logout() tea.Cmd {
	e := m.env
	return func() tea.Msg {
		return logoutResultMsg{err: e.app.Auth.Logout(e.ctx)}
	}
}

func (m profileModel) View() string {
	s := m.env.styles
	var sb strings.Builder
	sb.WriteString(s.Header.Render("Profile"))
	sb.WriteString("\n")

	img := m.saved.Image
	if img == "" {
		img = "no picture"
	}
	sb.WriteString(s.Muted.Render("Picture: "+img) + "\n\n")

	for i, name := range profileFields {
		label := s.Muted.Render(strings.ToUpper(name))
		if i == m.cursor {
			label = s.Selected.Render("> " + strings.ToUpper(name))
		}
		sb.WriteString(label + "\n")

		switch {
		case m.mode == profileEditing && i == m.cursor:
			sb.WriteString(m.input.View())
		case name == "Password":
			sb.WriteString(strings.Repeat("•", len(m.draft.Password)))
		default:
			sb.WriteString(m.fieldValue(i))
		}
		sb.WriteString("\n\n")
	}

	if m.mode == profileImage {
		sb.WriteString("Change Picture\n" + m.input.View() + "\n")
	}
	if m.err != "" {
		sb.WriteString(s.Error.Render(m.err) + "\n")
	}
	sb.WriteString(s.Help.Render("e edit field • s save • i change picture • o log out"))
	return sb.String()
}
