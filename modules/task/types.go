package task

import (
	"context"

	domain "github.com/megha-ranjith/To-Do/domain/task"
)

// CreateTaskRequest is the request for creating a task. Empty optional
// fields receive their defaults.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	AssignedTo  string `json:"assigned_to"`
}

// UpdateTaskRequest carries the client-editable fields of a task. A nil
// field is left unchanged; id and created_at are not editable.
type UpdateTaskRequest struct {
	TaskID      string  `json:"task_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// TaskIDRequest addresses a single task.
type TaskIDRequest struct {
	TaskID string `json:"task_id"`
}

// EmptyRequest is used by services that take no arguments.
type EmptyRequest struct{}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
	Total int           `json:"total"`
}

// TaskReply is the reply of the services that return a single task. A
// rejected request (missing title, unknown id) carries the reason in Error
// and no task.
type TaskReply struct {
	Task  *domain.Task `json:"task,omitempty"`
	Error string       `json:"error,omitempty"`
}

// SettingsReply is the reply of update-settings.
type SettingsReply struct {
	Settings *domain.Settings `json:"settings,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// DeleteTaskResponse is the response for deleting a task.
type DeleteTaskResponse struct {
	Success bool `json:"success"`
}

// DashboardResponse is the dashboard view model.
type DashboardResponse struct {
	Stats domain.Stats  `json:"stats"`
	Tasks []domain.Task `json:"tasks"`
}

// KanbanResponse is the kanban view model.
type KanbanResponse struct {
	Todo []domain.Task `json:"todo"`
	Done []domain.Task `json:"done"`
}

// CalendarResponse is the calendar view model.
type CalendarResponse struct {
	Tasks       []domain.Task        `json:"tasks"`
	Days        []domain.CalendarDay `json:"days"`
	Unscheduled []domain.Task        `json:"unscheduled"`
}

// UpdateSettingsRequest is the request for changing settings.
type UpdateSettingsRequest struct {
	Theme string `json:"theme"`
}

// TaskPort defines the task operations available to driving adapters.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	ToggleTask(ctx context.Context, taskID string) (*domain.Task, error)
	Dashboard(ctx context.Context) (*DashboardResponse, error)
	Kanban(ctx context.Context) (*KanbanResponse, error)
	Calendar(ctx context.Context) (*CalendarResponse, error)
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*domain.Settings, error)
}
