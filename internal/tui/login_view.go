package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginFinishedMsg reports the outcome of a credential exchange. The token
// pair itself is persisted by the client; only the error travels back.
type loginFinishedMsg struct {
	err error
}

// loginView collects credentials and exchanges them for a session. It only
// exists while no session marker is present.
type loginView struct {
	app        *App
	username   textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newLoginView(app *App) *loginView {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &loginView{app: app, username: username, password: password}
}

func (v *loginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *loginView) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "up", "down":
			v.toggleFocus()
			return textinput.Blink
		case "enter":
			return v.attempt()
		}
	}

	var cmd tea.Cmd
	if v.focus == 0 {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return cmd
}

func (v *loginView) toggleFocus() {
	v.focus = (v.focus + 1) % 2
	if v.focus == 0 {
		v.username.Focus()
		v.password.Blur()
	} else {
		v.username.Blur()
		v.password.Focus()
	}
}

func (v *loginView) attempt() tea.Cmd {
	if v.submitting {
		return nil
	}
	username := strings.TrimSpace(v.username.Value())
	password := v.password.Value()
	if username == "" || password == "" {
		v.errMsg = "Username and password are required"
		return nil
	}
	v.submitting = true
	v.errMsg = ""

	client := v.app.client
	timeout := v.app.cfg.RequestTimeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_, err := client.Login(ctx, username, password)
		return loginFinishedMsg{err: err}
	}
}

func (v *loginView) View() string {
	lines := []string{
		panelTitleStyle.Render("Sign in"),
		"",
		v.username.View(),
		v.password.View(),
	}
	if v.submitting {
		lines = append(lines, "", dimStyle.Render("Signing in..."))
	}
	if v.errMsg != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Render(v.errMsg))
	}
	lines = append(lines, "", dimStyle.Render("Enter → sign in    Tab → switch field"))
	return strings.Join(lines, "\n")
}
