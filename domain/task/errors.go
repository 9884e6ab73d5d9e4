package task

import "errors"

// Sentinel errors for task operations.
var (
	// ErrTitleRequired is returned when a task is created without a title.
	ErrTitleRequired = errors.New("title required")

	// ErrTaskNotFound is returned when no task has the requested ID.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTheme is returned when a settings update names an unknown theme.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrStorage wraps every failure to read, decode or write the document.
	ErrStorage = errors.New("storage error")
)
