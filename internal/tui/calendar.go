package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/rosterdesk/internal/schedule"
)

// calendarModel is the month-grid date picker for the scheduling form. The
// highlighted day is the selected date. The floor is the start of the day
// the view mounted; earlier dates cannot be reached. The floor is a
// snapshot, it is not re-evaluated as the session ages past midnight.
type calendarModel struct {
	cursor time.Time
	floor  time.Time
}

func newCalendar(now time.Time) calendarModel {
	day := schedule.DayFloor(now)
	return calendarModel{cursor: day, floor: day}
}

// Selected returns the currently highlighted calendar date.
func (m calendarModel) Selected() time.Time {
	return m.cursor
}

// MoveDays shifts the selection by n days, clamped to the floor.
func (m *calendarModel) MoveDays(n int) {
	m.set(m.cursor.AddDate(0, 0, n))
}

// MoveMonths shifts the selection by n months, clamped to the floor.
func (m *calendarModel) MoveMonths(n int) {
	m.set(m.cursor.AddDate(0, n, 0))
}

func (m *calendarModel) set(c time.Time) {
	if c.Before(m.floor) {
		c = m.floor
	}
	m.cursor = c
}

var (
	calHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	calWeekdayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	calPastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	calCursorStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	calInactiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
)

// View renders the month containing the selection as a grid.
func (m calendarModel) View(focused bool) string {
	first := time.Date(m.cursor.Year(), m.cursor.Month(), 1, 0, 0, 0, 0, m.cursor.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	lines := []string{
		calHeaderStyle.Render(m.cursor.Format("January 2006")),
		calWeekdayStyle.Render("Su Mo Tu We Th Fr Sa"),
	}

	cells := make([]string, 0, 42)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, "  ")
	}
	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		label := fmt.Sprintf("%2d", day)
		switch {
		case date.Equal(m.cursor) && focused:
			label = calCursorStyle.Render(label)
		case date.Equal(m.cursor):
			label = calInactiveStyle.Render(label)
		case date.Before(m.floor):
			label = calPastStyle.Render(label)
		}
		cells = append(cells, label)
	}

	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		lines = append(lines, strings.Join(cells[start:end], " "))
	}
	return strings.Join(lines, "\n")
}
