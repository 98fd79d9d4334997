package schedule

import (
	"strings"
	"testing"
	"time"
)

func TestToggleParity(t *testing.T) {
	draft := NewDraft(time.Now())
	sequence := []int{1, 2, 1, 3, 2, 2, 1, 1, 3, 3, 3}

	counts := map[int]int{}
	for _, id := range sequence {
		draft.Toggle(id)
		counts[id]++
	}

	for id, n := range counts {
		want := n%2 == 1
		if got := draft.IsSelected(id); got != want {
			t.Fatalf("id %d toggled %d times: selected=%v, want %v", id, n, got, want)
		}
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	draft := NewDraft(time.Now())
	draft.Toggle(3)
	draft.Toggle(1)
	draft.Toggle(2)
	draft.Toggle(1) // deselect
	draft.Toggle(1) // re-select, now last

	got := draft.Selected()
	want := []int{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("selected = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selected = %v, want %v", got, want)
		}
	}
}

func TestReadyPredicate(t *testing.T) {
	cases := []struct {
		name    string
		hour    string
		minute  string
		comment string
		want    bool
	}{
		{"all empty", "", "", "", false},
		{"hour only", "9", "", "", false},
		{"hour and minute", "9", "30", "", false},
		{"comment only", "", "", "hi", false},
		{"minute and comment", "", "30", "hi", false},
		{"all set", "9", "30", "hi", true},
		{"all set padded hour", "09", "05", "note", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := NewDraft(time.Now())
			draft.SetHour(tc.hour)
			draft.SetMinute(tc.minute)
			draft.SetComment(tc.comment)
			if got := draft.Ready(); got != tc.want {
				t.Fatalf("Ready() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReadyIgnoresSelection(t *testing.T) {
	draft := NewDraft(time.Now())
	draft.SetHour("9")
	draft.SetMinute("30")
	draft.SetComment("hi")
	if !draft.Ready() {
		t.Fatalf("draft with empty selection must still be submittable")
	}
}

func TestSetCommentBoundary(t *testing.T) {
	draft := NewDraft(time.Now())

	exact := strings.Repeat("a", CommentLimit)
	if !draft.SetComment(exact) {
		t.Fatalf("comment of exactly %d chars must be accepted", CommentLimit)
	}
	if draft.Remaining() != 0 {
		t.Fatalf("remaining = %d, want 0", draft.Remaining())
	}

	if draft.SetComment(exact + "b") {
		t.Fatalf("comment over %d chars must be rejected", CommentLimit)
	}
	if draft.Comment() != exact {
		t.Fatalf("rejected input must leave the stored comment untouched")
	}

	if draft.SetComment("short") != true {
		t.Fatalf("short comment rejected")
	}
	if got, want := draft.Remaining(), CommentLimit-5; got != want {
		t.Fatalf("remaining = %d, want %d", got, want)
	}
	if draft.Remaining() < 0 {
		t.Fatalf("remaining must never be negative")
	}
}

func TestResetClearsDraftButKeepsDate(t *testing.T) {
	date := time.Date(2024, time.March, 10, 14, 0, 0, 0, time.UTC)
	draft := NewDraft(time.Now())
	draft.SetDate(date)
	draft.Toggle(1)
	draft.Toggle(2)
	draft.SetHour("9")
	draft.SetMinute("30")
	draft.SetComment("hi")

	draft.Reset()

	if len(draft.Selected()) != 0 {
		t.Fatalf("selection not cleared: %v", draft.Selected())
	}
	if draft.Hour() != "" || draft.Minute() != "" || draft.Comment() != "" {
		t.Fatalf("hour/minute/comment not cleared")
	}
	if draft.Ready() {
		t.Fatalf("enablement must revert to disabled")
	}
	if !draft.Date().Equal(date) {
		t.Fatalf("date must survive reset, got %v", draft.Date())
	}
}
