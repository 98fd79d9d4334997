package tui

import (
	"strings"
	"testing"
	"time"
)

func TestCalendarClampsToFloor(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
	cal := newCalendar(now)

	cal.MoveDays(-1)
	if got := cal.Selected(); !got.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("moving before the floor must clamp, got %v", got)
	}

	cal.MoveMonths(-1)
	if got := cal.Selected(); !got.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("month move before the floor must clamp, got %v", got)
	}
}

func TestCalendarMovesForward(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
	cal := newCalendar(now)

	cal.MoveDays(5)
	if got := cal.Selected(); got.Day() != 15 {
		t.Fatalf("day = %d, want 15", got.Day())
	}

	cal.MoveMonths(1)
	if got := cal.Selected(); got.Month() != time.April || got.Day() != 15 {
		t.Fatalf("got %v, want April 15", got)
	}

	cal.MoveDays(-7)
	if got := cal.Selected(); got.Month() != time.April || got.Day() != 8 {
		t.Fatalf("got %v, want April 8", got)
	}
}

func TestCalendarSelectionKeepsDayGranularity(t *testing.T) {
	now := time.Date(2024, time.March, 10, 23, 59, 59, 0, time.UTC)
	cal := newCalendar(now)
	got := cal.Selected()
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Fatalf("selection must be a calendar day, got %v", got)
	}
}

func TestCalendarViewShowsMonthHeader(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	cal := newCalendar(now)
	view := cal.View(true)
	if !strings.Contains(view, "March 2024") {
		t.Fatalf("view missing month header:\n%s", view)
	}
	if !strings.Contains(view, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("view missing weekday row:\n%s", view)
	}
	if !strings.Contains(view, "31") {
		t.Fatalf("view missing last day of March:\n%s", view)
	}
}
