// internal/tui/app.go
//
// The main TUI for rosterdesk, following The Elm Architecture:
//
// 1. Model: the application state
// 2. Update: state transitions driven by messages
// 3. View: renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/rosterdesk/internal/api"
	"github.com/kingrea/rosterdesk/internal/config"
	"github.com/kingrea/rosterdesk/internal/logbook"
	"github.com/kingrea/rosterdesk/internal/session"
)

// appState represents which "screen" we're on
type appState int

const (
	stateLogin      appState = iota // Credential form, no session marker present
	stateScheduling                 // Roster plus the scheduling form
)

// AppOption customizes App construction for tests.
type AppOption func(*App)

// WithClock overrides the wall clock used for mount-time snapshots.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// App is the main application model. It owns navigation between the login
// and scheduling screens; everything inside a screen lives in its view.
type App struct {
	state    appState
	cfg      *config.Config
	sessions *session.Store
	client   *api.Client
	logbook  *logbook.Logbook
	now      func() time.Time

	login      *loginView
	scheduling *scheduleView
	generation int

	statusMsg string

	width  int
	height int
}

// NewApp builds the model and runs the one-shot session gate: with a valid
// session marker the scheduling screen mounts directly, otherwise the login
// screen does. The gate is evaluated here only, never reactively.
func NewApp(cfg *config.Config, sessions *session.Store, client *api.Client, book *logbook.Logbook, opts ...AppOption) *App {
	app := &App{
		cfg:      cfg,
		sessions: sessions,
		client:   client,
		logbook:  book,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	if sessions.IsAuthenticated() {
		app.state = stateScheduling
		app.scheduling = newScheduleView(app)
		app.logInfo("Session found · opening scheduling view")
	} else {
		app.state = stateLogin
		app.login = newLoginView(app)
		app.logInfo("No session · opening login view")
	}
	return app
}

func (a *App) nextGen() int {
	a.generation++
	return a.generation
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	if a.state == stateScheduling && a.scheduling != nil {
		return a.scheduling.Init()
	}
	if a.login != nil {
		return a.login.Init()
	}
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case loginFinishedMsg:
		return a.handleLoginFinished(msg)

	case rosterLoadedMsg:
		return a.handleRosterLoaded(msg)

	case submitFinishedMsg:
		return a.handleSubmitFinished(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.teardown()
			return a, tea.Quit
		case "q":
			if a.state == stateScheduling && a.scheduling != nil && a.scheduling.focus != focusComment {
				a.teardown()
				return a, tea.Quit
			}
		case "ctrl+l":
			if a.state == stateScheduling {
				return a.logout()
			}
		}
	}

	switch a.state {
	case stateLogin:
		if a.login != nil {
			return a, a.login.Update(msg)
		}
	case stateScheduling:
		if a.scheduling != nil {
			return a, a.scheduling.Update(msg)
		}
	}
	return a, nil
}

func (a *App) handleLoginFinished(msg loginFinishedMsg) (tea.Model, tea.Cmd) {
	if a.login == nil {
		return a, nil
	}
	a.login.submitting = false
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			a.login.errMsg = "Invalid username or password"
		} else {
			a.login.errMsg = "Sign-in failed, try again"
			a.logError("Login failed: %v", msg.err)
		}
		return a, nil
	}
	a.logInfo("Signed in")
	return a.navigateToScheduling()
}

func (a *App) handleRosterLoaded(msg rosterLoadedMsg) (tea.Model, tea.Cmd) {
	if a.scheduling == nil || msg.gen != a.scheduling.gen {
		return a, nil
	}
	if msg.err != nil {
		// Any roster-fetch failure is treated as a session failure.
		if errors.Is(msg.err, api.ErrUnauthorized) {
			a.logWarn("Roster fetch unauthorized · session cleared")
		} else {
			a.logError("Roster fetch failed: %v", msg.err)
		}
		return a.navigateToLogin("Session expired, sign in again")
	}
	a.scheduling.roster = msg.employees
	a.scheduling.loading = false
	a.logInfo("Roster loaded · %d employee(s)", len(msg.employees))
	return a, nil
}

func (a *App) handleSubmitFinished(msg submitFinishedMsg) (tea.Model, tea.Cmd) {
	if a.scheduling == nil || msg.gen != a.scheduling.gen {
		return a, nil
	}
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			a.logWarn("Schedule submit unauthorized · session cleared")
			return a.navigateToLogin("Session expired, sign in again")
		}
		a.logWarn("Schedule submit failed: %v", msg.err)
		a.statusMsg = "Schedule submit failed (see log)"
		return a, nil
	}
	a.logInfo("Schedule set successfully · %d record(s)", msg.count)
	a.statusMsg = fmt.Sprintf("Schedule submitted for %d record(s)", msg.count)
	return a, nil
}

// navigateToScheduling mounts a fresh scheduling view.
func (a *App) navigateToScheduling() (tea.Model, tea.Cmd) {
	a.teardown()
	a.state = stateScheduling
	a.login = nil
	a.scheduling = newScheduleView(a)
	a.statusMsg = ""
	return a, a.scheduling.Init()
}

// navigateToLogin tears the scheduling view down and mounts the login form.
func (a *App) navigateToLogin(status string) (tea.Model, tea.Cmd) {
	a.teardown()
	a.state = stateLogin
	a.scheduling = nil
	a.login = newLoginView(a)
	a.statusMsg = status
	return a, a.login.Init()
}

// logout clears both token keys and returns to the login screen.
func (a *App) logout() (tea.Model, tea.Cmd) {
	if err := a.sessions.Logout(); err != nil {
		a.logError("Logout failed: %v", err)
	}
	a.logInfo("Signed out")
	return a.navigateToLogin("Signed out")
}

func (a *App) teardown() {
	if a.scheduling != nil {
		a.scheduling.teardown()
	}
}

// View renders the current state to a string.
func (a *App) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⬡ ROSTERDESK")

	var content string
	switch a.state {
	case stateLogin:
		if a.login != nil {
			content = a.login.View()
		}
	case stateScheduling:
		if a.scheduling != nil {
			content = a.scheduling.View()
		}
	}
	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(content)

	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.renderFooter())
	sections = append(sections, footer)
	return strings.Join(sections, "\n")
}

func (a *App) renderFooter() string {
	hints := "Ctrl+C → quit"
	if a.state == stateScheduling {
		hints = "Tab → next control    Ctrl+L → sign out    q → quit"
	}
	if a.statusMsg == "" {
		return hints
	}
	return a.statusMsg + "    " + hints
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("LOG")
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}
