package schedule

import (
	"fmt"
	"time"
)

// BuildRecords assembles the outbound batch: one Record per selected
// employee, in selection order, all carrying the shared date/time/comment.
// Selected ids with no matching roster entry are dropped silently. The date
// is serialized at calendar-day granularity and the time as hour:minute:00
// with both parts exactly as drafted.
func (d *Draft) BuildRecords(roster []Employee) []Record {
	date := d.date.Format("2006-01-02")
	clock := fmt.Sprintf("%s:%s:00", d.hour, d.minute)

	records := make([]Record, 0, len(d.selected))
	for _, id := range d.selected {
		employee, ok := lookup(roster, id)
		if !ok {
			continue
		}
		records = append(records, Record{
			Date:    date,
			Time:    clock,
			Comment: d.comment,
			Email:   employee.Email,
		})
	}
	return records
}

func lookup(roster []Employee, id int) (Employee, bool) {
	for _, employee := range roster {
		if employee.ID == id {
			return employee, true
		}
	}
	return Employee{}, false
}

// AvailableHours returns the selectable hours from now's wall-clock hour
// through 23, formatted without zero-padding. Callers snapshot this once at
// mount; an hour valid at mount may be past by submission time, which is
// accepted.
func AvailableHours(now time.Time) []string {
	hours := make([]string, 0, 24-now.Hour())
	for h := now.Hour(); h < 24; h++ {
		hours = append(hours, fmt.Sprintf("%d", h))
	}
	return hours
}

// AvailableMinutes returns "00" through "59", zero-padded.
func AvailableMinutes() []string {
	minutes := make([]string, 0, 60)
	for m := 0; m < 60; m++ {
		minutes = append(minutes, fmt.Sprintf("%02d", m))
	}
	return minutes
}

// DayFloor returns the start of the calendar day containing t, the minimum
// selectable date for the calendar component.
func DayFloor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
