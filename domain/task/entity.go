package task

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Priority is the urgency label of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Known category labels.
const (
	CategoryWork     = "Work"
	CategoryPersonal = "Personal"
	CategoryShopping = "Shopping"
	CategoryHealth   = "Health"
	CategoryGeneral  = "General"
)

// Defaults applied when a task is created without the field.
const (
	DefaultCategory   = CategoryGeneral
	DefaultPriority   = PriorityMedium
	DefaultAssignedTo = "Me"
	DefaultTheme      = "dark"
)

// Task is the core domain entity representing a todo item.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	DueDate     string    `json:"due_date"`
	Completed   bool      `json:"completed"`
	AssignedTo  string    `json:"assigned_to"`
	CreatedAt   Timestamp `json:"created_at"`
}

// Settings holds user preferences stored next to the tasks.
type Settings struct {
	Theme string `json:"theme"`
}

// Document is the whole persisted state: every task plus settings.
type Document struct {
	Tasks    []Task   `json:"tasks"`
	Settings Settings `json:"settings"`
}

// NewDocument returns the document used when nothing has been stored yet.
func NewDocument() *Document {
	return &Document{
		Tasks:    []Task{},
		Settings: Settings{Theme: DefaultTheme},
	}
}

// Normalize fills a decoded document so that Tasks is never nil.
func (d *Document) Normalize() {
	if d.Tasks == nil {
		d.Tasks = []Task{}
	}
}

// IndexOf returns the position of the task with the given ID, or -1.
func (d *Document) IndexOf(id string) int {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	tasks := make([]Task, len(d.Tasks))
	copy(tasks, d.Tasks)
	return &Document{Tasks: tasks, Settings: d.Settings}
}

// UnmarshalJSON decodes a task, coercing a non-boolean "completed" value
// the way older data files may have stored it.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	aux := struct {
		*plain
		Completed json.RawMessage `json:"completed"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Completed = coerceBool(aux.Completed)
	return nil
}

// coerceBool reads a JSON boolean, a boolean string ("true", "1", "False")
// or a number. Anything else counts as false.
func coerceBool(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		return err == nil && b
	case float64:
		return val != 0
	default:
		return false
	}
}

// Timestamp is a creation time. It is written as RFC 3339 and also reads the
// naive ISO-8601 form (no offset) produced by older data files. A value in
// any other form is kept verbatim and written back unchanged.
type Timestamp struct {
	time.Time
	raw json.RawMessage
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// NewTimestamp wraps t with the monotonic reading removed.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Round(0)}
}

// TimestampFromText parses s, keeping it verbatim when it is not a
// recognized timestamp.
func TimestampFromText(s string) Timestamp {
	parsed, err := ParseTimestamp(s)
	if err != nil {
		raw, _ := json.Marshal(s)
		return Timestamp{raw: raw}
	}
	return parsed
}

// Recognized reports whether the value parsed as a timestamp (or was empty).
func (t Timestamp) Recognized() bool {
	return t.raw == nil
}

// Text returns the stored form: RFC 3339 for parsed values, the original
// text otherwise.
func (t Timestamp) Text() string {
	if t.raw != nil {
		var s string
		if err := json.Unmarshal(t.raw, &s); err == nil {
			return s
		}
		return string(t.raw)
	}
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.raw != nil {
		return t.raw, nil
	}
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = Timestamp{raw: append(json.RawMessage(nil), data...)}
		return nil
	}
	*t = TimestampFromText(s)
	return nil
}

// ParseTimestamp parses RFC 3339 or naive ISO-8601 (local time) text.
// The empty string yields the zero Timestamp.
func ParseTimestamp(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{Time: parsed}, nil
	}
	for _, layout := range naiveLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Timestamp{Time: parsed}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("created_at: unrecognized timestamp %q", s)
}

// ValidTheme reports whether theme is one the interface can render.
func ValidTheme(theme string) bool {
	return theme == "dark" || theme == "light"
}
