package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/rosterdesk/internal/schedule"
)

// focusZone identifies which control of the scheduling view owns keyboard
// input.
type focusZone int

const (
	focusRoster focusZone = iota
	focusCalendar
	focusHour
	focusMinute
	focusComment
	focusSubmit
)

type rosterLoadedMsg struct {
	gen       int
	employees []schedule.Employee
	err       error
}

type submitFinishedMsg struct {
	gen   int
	count int
	err   error
}

// scheduleView is the scheduling screen: the roster snapshot, the shared
// draft and the controls that mutate it. All state changes happen on the
// bubbletea loop; network work runs in commands carrying the mount
// generation so stale responses never touch a newer mount.
type scheduleView struct {
	app    *App
	gen    int
	ctx    context.Context
	cancel context.CancelFunc

	roster  []schedule.Employee
	loading bool
	spin    spinner.Model
	cursor  int

	draft     *schedule.Draft
	showForm  bool
	cal       calendarModel
	hours     []string
	minutes   []string
	hourIdx   int
	minuteIdx int
	comment   textarea.Model

	focus focusZone
}

func newScheduleView(app *App) *scheduleView {
	now := app.now()
	ctx, cancel := context.WithCancel(context.Background())

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))

	comment := textarea.New()
	comment.Placeholder = "Add a comment..."
	comment.CharLimit = schedule.CommentLimit
	comment.SetWidth(38)
	comment.SetHeight(4)
	comment.ShowLineNumbers = false

	return &scheduleView{
		app:       app,
		gen:       app.nextGen(),
		ctx:       ctx,
		cancel:    cancel,
		loading:   true,
		spin:      spin,
		draft:     schedule.NewDraft(now),
		showForm:  true,
		cal:       newCalendar(now),
		hours:     schedule.AvailableHours(now),
		minutes:   schedule.AvailableMinutes(),
		hourIdx:   -1,
		minuteIdx: -1,
		comment:   comment,
		focus:     focusRoster,
	}
}

// Init fires the one-shot roster fetch.
func (v *scheduleView) Init() tea.Cmd {
	return tea.Batch(v.spin.Tick, v.fetchRoster())
}

// teardown cancels any in-flight request for this mount.
func (v *scheduleView) teardown() {
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *scheduleView) fetchRoster() tea.Cmd {
	gen := v.gen
	ctx := v.ctx
	client := v.app.client
	timeout := v.app.cfg.RequestTimeout()
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		employees, err := client.ListEmployees(reqCtx)
		return rosterLoadedMsg{gen: gen, employees: employees, err: err}
	}
}

// submit assembles the batch and resets the draft before the request is
// issued; the outcome only reaches the log and the status line.
func (v *scheduleView) submit() tea.Cmd {
	records := v.draft.BuildRecords(v.roster)

	v.draft.Reset()
	v.comment.Reset()
	v.hourIdx = -1
	v.minuteIdx = -1

	gen := v.gen
	ctx := v.ctx
	client := v.app.client
	timeout := v.app.cfg.RequestTimeout()
	return func() tea.Msg {
		reqCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		err := client.CreateSchedules(reqCtx, records)
		return submitFinishedMsg{gen: gen, count: len(records), err: err}
	}
}

func (v *scheduleView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !v.loading {
			return nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	if v.focus == focusComment {
		return v.updateComment(msg)
	}
	return nil
}

func (v *scheduleView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		return v.cycleFocus(1)
	case "shift+tab":
		return v.cycleFocus(-1)
	}

	switch v.focus {
	case focusRoster:
		return v.handleRosterKey(msg)
	case focusCalendar:
		v.handleCalendarKey(msg)
		return nil
	case focusHour:
		v.handleHourKey(msg)
		return nil
	case focusMinute:
		v.handleMinuteKey(msg)
		return nil
	case focusComment:
		return v.updateComment(msg)
	case focusSubmit:
		if msg.String() == "enter" {
			return v.handleSubmitKey()
		}
	}
	return nil
}

func (v *scheduleView) cycleFocus(dir int) tea.Cmd {
	zones := int(focusSubmit) + 1
	v.focus = focusZone((int(v.focus) + dir + zones) % zones)
	if v.focus == focusComment {
		v.comment.Focus()
		return textarea.Blink
	}
	v.comment.Blur()
	return nil
}

func (v *scheduleView) handleRosterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.roster)-1 {
			v.cursor++
		}
	case " ", "enter":
		if v.cursor < len(v.roster) {
			v.draft.Toggle(v.roster[v.cursor].ID)
			// Toggling never touches the draft fields but always
			// reveals the drafting panel.
			v.showForm = true
		}
	}
	return nil
}

func (v *scheduleView) handleCalendarKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "left", "h":
		v.cal.MoveDays(-1)
	case "right", "l":
		v.cal.MoveDays(1)
	case "up", "k":
		v.cal.MoveDays(-7)
	case "down", "j":
		v.cal.MoveDays(7)
	case "pgup":
		v.cal.MoveMonths(-1)
	case "pgdown":
		v.cal.MoveMonths(1)
	}
	v.draft.SetDate(v.cal.Selected())
}

func (v *scheduleView) handleHourKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if v.hourIdx > -1 {
			v.hourIdx--
		}
	case "down", "j":
		if v.hourIdx < len(v.hours)-1 {
			v.hourIdx++
		}
	}
	if v.hourIdx < 0 {
		v.draft.SetHour("")
	} else {
		v.draft.SetHour(v.hours[v.hourIdx])
	}
}

func (v *scheduleView) handleMinuteKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		if v.minuteIdx > -1 {
			v.minuteIdx--
		}
	case "down", "j":
		if v.minuteIdx < len(v.minutes)-1 {
			v.minuteIdx++
		}
	}
	if v.minuteIdx < 0 {
		v.draft.SetMinute("")
	} else {
		v.draft.SetMinute(v.minutes[v.minuteIdx])
	}
}

func (v *scheduleView) handleSubmitKey() tea.Cmd {
	if !v.draft.Ready() {
		v.app.statusMsg = "Pick an hour, a minute and a comment first"
		return nil
	}
	v.app.statusMsg = "Submitting schedule..."
	return v.submit()
}

func (v *scheduleView) updateComment(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.comment, cmd = v.comment.Update(msg)
	// The textarea enforces the limit, so this always accepts.
	v.draft.SetComment(v.comment.Value())
	return cmd
}

var (
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	focusMarkStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	rowCursorStyle  = lipgloss.NewStyle().Bold(true)
	buttonOnStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(lipgloss.Color("#5B8DEF")).Foreground(lipgloss.Color("#FFFFFF"))
	buttonOffStyle  = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("#444444")).Foreground(lipgloss.Color("#888888"))
)

func (v *scheduleView) View() string {
	left := v.renderRoster()
	if !v.showForm {
		return left
	}
	right := v.renderForm()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (v *scheduleView) renderRoster() string {
	lines := []string{v.zoneTitle("Employees", focusRoster)}
	if v.loading {
		lines = append(lines, fmt.Sprintf("%s Loading employees...", v.spin.View()))
		return strings.Join(lines, "\n")
	}
	if len(v.roster) == 0 {
		lines = append(lines, dimStyle.Render("No employees in the roster."))
		return strings.Join(lines, "\n")
	}
	for i, employee := range v.roster {
		mark := "[ ]"
		if v.draft.IsSelected(employee.ID) {
			mark = "[x]"
		}
		row := fmt.Sprintf("%s %s", mark, employee.Name)
		if v.focus == focusRoster && i == v.cursor {
			row = rowCursorStyle.Render("> " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row, dimStyle.Render("      "+employee.Email))
	}
	return strings.Join(lines, "\n")
}

func (v *scheduleView) renderForm() string {
	sections := []string{
		v.zoneTitle("Schedule", focusCalendar),
		v.cal.View(v.focus == focusCalendar),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			v.renderSelect("Hour", v.hours, v.hourIdx, focusHour),
			"   ",
			v.renderSelect("Minute", v.minutes, v.minuteIdx, focusMinute),
		),
		"",
		v.zoneTitle("Comment", focusComment),
		v.comment.View(),
		dimStyle.Render(fmt.Sprintf("%d characters remaining", v.draft.Remaining())),
		"",
		v.renderSubmit(),
	}
	return strings.Join(sections, "\n")
}

func (v *scheduleView) renderSelect(label string, options []string, idx int, zone focusZone) string {
	value := fmt.Sprintf("Select %s", strings.ToLower(label))
	if idx >= 0 && idx < len(options) {
		value = options[idx]
	}
	body := fmt.Sprintf("%s: %s", label, value)
	if v.focus == zone {
		return focusMarkStyle.Render("› ") + body + dimStyle.Render(" ↑↓")
	}
	return "  " + body
}

func (v *scheduleView) renderSubmit() string {
	style := buttonOffStyle
	if v.draft.Ready() {
		style = buttonOnStyle
	}
	button := style.Render("Set Schedule")
	if v.focus == focusSubmit {
		return focusMarkStyle.Render("› ") + button
	}
	return "  " + button
}

func (v *scheduleView) zoneTitle(title string, zone focusZone) string {
	if v.focus == zone {
		return focusMarkStyle.Render("› ") + panelTitleStyle.Render(title)
	}
	return "  " + panelTitleStyle.Render(title)
}
