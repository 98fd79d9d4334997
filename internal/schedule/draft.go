// Package schedule holds the scheduling form state: which employees are
// selected, the shared date/time/comment draft, and the assembly of the
// outbound batch. It is pure state + derivation; network and rendering live
// elsewhere.
package schedule

import "time"

// CommentLimit bounds the comment at the input boundary. Longer input is
// rejected outright, never truncated.
const CommentLimit = 200

// Draft is the shared schedule draft plus the employee selection. One draft
// applies to every selected employee; there is no per-employee customization.
type Draft struct {
	selected []int
	date     time.Time
	hour     string
	minute   string
	comment  string
	enabled  bool
}

// NewDraft returns an empty draft whose calendar date starts at the given
// moment (the view's mount time).
func NewDraft(date time.Time) *Draft {
	return &Draft{date: date}
}

// Toggle flips membership of id in the selection. Insertion order is kept so
// the submission batch is emitted in the order employees were picked.
func (d *Draft) Toggle(id int) {
	for i, existing := range d.selected {
		if existing == id {
			d.selected = append(d.selected[:i], d.selected[i+1:]...)
			return
		}
	}
	d.selected = append(d.selected, id)
}

// IsSelected reports whether id is currently selected.
func (d *Draft) IsSelected(id int) bool {
	for _, existing := range d.selected {
		if existing == id {
			return true
		}
	}
	return false
}

// Selected returns the selected ids in insertion order.
func (d *Draft) Selected() []int {
	out := make([]int, len(d.selected))
	copy(out, d.selected)
	return out
}

// SetDate records the calendar date. Any time-of-day component is carried
// along and discarded at serialization.
func (d *Draft) SetDate(date time.Time) {
	d.date = date
}

// Date returns the currently drafted calendar date.
func (d *Draft) Date() time.Time {
	return d.date
}

// SetHour records the drafted hour ("" clears it) and re-derives enablement.
func (d *Draft) SetHour(value string) {
	d.hour = value
	d.refresh()
}

// Hour returns the drafted hour, "" when unset.
func (d *Draft) Hour() string {
	return d.hour
}

// SetMinute records the drafted minute ("" clears it) and re-derives
// enablement.
func (d *Draft) SetMinute(value string) {
	d.minute = value
	d.refresh()
}

// Minute returns the drafted minute, "" when unset.
func (d *Draft) Minute() string {
	return d.minute
}

// SetComment stores the comment text. Text over CommentLimit runes is
// rejected and the stored comment is left untouched; the return value
// reports whether the text was accepted.
func (d *Draft) SetComment(text string) bool {
	if len([]rune(text)) > CommentLimit {
		return false
	}
	d.comment = text
	d.refresh()
	return true
}

// Comment returns the drafted comment.
func (d *Draft) Comment() string {
	return d.comment
}

// Remaining returns how many comment characters are still available.
func (d *Draft) Remaining() int {
	return CommentLimit - len([]rune(d.comment))
}

// Ready reports whether submission is enabled: hour set, minute set, and a
// non-empty comment. An empty selection does not disable submission.
func (d *Draft) Ready() bool {
	return d.enabled
}

// Reset clears the selection, hour, minute, comment and enablement back to
// their initial states. The calendar date is intentionally kept.
func (d *Draft) Reset() {
	d.selected = nil
	d.hour = ""
	d.minute = ""
	d.comment = ""
	d.enabled = false
}

func (d *Draft) refresh() {
	d.enabled = d.hour != "" && d.minute != "" && d.comment != ""
}
