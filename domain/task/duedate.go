package task

import "time"

// DueDateLayout is the calendar-date format used for due dates.
const DueDateLayout = "2006-01-02"

// dueDateParseLayout also accepts single-digit months and days ("2020-1-1").
const dueDateParseLayout = "2006-1-2"

// DueState tells whether a due date is absent, usable or garbage.
type DueState int

const (
	DueNone DueState = iota
	DueValid
	DueInvalid
)

// DueDate is the result of parsing a task's due_date field.
type DueDate struct {
	State DueState
	Date  time.Time
}

// ParseDueDate interprets raw as a calendar date at midnight in loc.
func ParseDueDate(raw string, loc *time.Location) DueDate {
	if raw == "" {
		return DueDate{State: DueNone}
	}
	if loc == nil {
		loc = time.Local
	}
	date, err := time.ParseInLocation(dueDateParseLayout, raw, loc)
	if err != nil {
		return DueDate{State: DueInvalid}
	}
	return DueDate{State: DueValid, Date: date}
}

// Before reports whether the due date is valid and strictly before t.
func (d DueDate) Before(t time.Time) bool {
	return d.State == DueValid && d.Date.Before(t)
}

// Due parses the task's due date in the location of now.
func (t Task) Due(now time.Time) DueDate {
	return ParseDueDate(t.DueDate, now.Location())
}

// IsOverdue reports whether the task is open and its due date has passed.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Due(now).Before(now)
}
