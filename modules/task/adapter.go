package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	domain "github.com/megha-ranjith/To-Do/domain/task"
)

// taskAdapter implements TaskPort by calling the task module's
// request-reply services.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
// container is the ServiceContainer from the task module received via SetDependencyServiceContainer.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

func call[Req, Resp any](ctx context.Context, container mono.ServiceContainer, service string, req *Req, resp *Resp) error {
	if err := helper.CallRequestReplyService(
		ctx,
		container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	); err != nil {
		return mapServiceError(fmt.Errorf("%s service call failed: %w", service, err))
	}
	return nil
}

func (a *taskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*domain.Task, error) {
	var resp TaskReply
	if err := call(ctx, a.container, "create-task", req, &resp); err != nil {
		return nil, err
	}
	return unwrapTaskReply("create-task", resp)
}

func (a *taskAdapter) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var resp ListTasksResponse
	if err := call(ctx, a.container, "list-tasks", &EmptyRequest{}, &resp); err != nil {
		return nil, err
	}
	if resp.Tasks == nil {
		resp.Tasks = []domain.Task{}
	}
	return resp.Tasks, nil
}

func (a *taskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*domain.Task, error) {
	var resp TaskReply
	if err := call(ctx, a.container, "update-task", req, &resp); err != nil {
		return nil, err
	}
	return unwrapTaskReply("update-task", resp)
}

func (a *taskAdapter) DeleteTask(ctx context.Context, taskID string) error {
	var resp DeleteTaskResponse
	if err := call(ctx, a.container, "delete-task", &TaskIDRequest{TaskID: taskID}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("task not deleted: %s", taskID)
	}
	return nil
}

func (a *taskAdapter) ToggleTask(ctx context.Context, taskID string) (*domain.Task, error) {
	var resp TaskReply
	if err := call(ctx, a.container, "toggle-task", &TaskIDRequest{TaskID: taskID}, &resp); err != nil {
		return nil, err
	}
	return unwrapTaskReply("toggle-task", resp)
}

func (a *taskAdapter) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var resp DashboardResponse
	if err := call(ctx, a.container, "get-dashboard", &EmptyRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *taskAdapter) Kanban(ctx context.Context) (*KanbanResponse, error) {
	var resp KanbanResponse
	if err := call(ctx, a.container, "get-kanban", &EmptyRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *taskAdapter) Calendar(ctx context.Context) (*CalendarResponse, error) {
	var resp CalendarResponse
	if err := call(ctx, a.container, "get-calendar", &EmptyRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *taskAdapter) GetSettings(ctx context.Context) (*domain.Settings, error) {
	var resp domain.Settings
	if err := call(ctx, a.container, "get-settings", &EmptyRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *taskAdapter) UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*domain.Settings, error) {
	var resp SettingsReply
	if err := call(ctx, a.container, "update-settings", req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, mapServiceError(errors.New(resp.Error))
	}
	if resp.Settings == nil {
		return nil, fmt.Errorf("update-settings returned no settings")
	}
	return resp.Settings, nil
}

// unwrapTaskReply turns a rejection carried in the reply back into its
// domain error.
func unwrapTaskReply(service string, resp TaskReply) (*domain.Task, error) {
	if resp.Error != "" {
		return nil, mapServiceError(errors.New(resp.Error))
	}
	if resp.Task == nil {
		return nil, fmt.Errorf("%s returned no task", service)
	}
	return resp.Task, nil
}

// mapServiceError restores the domain sentinel from an error that crossed
// the request-reply boundary as plain text.
func mapServiceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, domain.ErrTaskNotFound.Error()):
		return fmt.Errorf("%w: %v", domain.ErrTaskNotFound, err)
	case strings.Contains(errMsg, domain.ErrTitleRequired.Error()):
		return fmt.Errorf("%w: %v", domain.ErrTitleRequired, err)
	case strings.Contains(errMsg, domain.ErrInvalidTheme.Error()):
		return fmt.Errorf("%w: %v", domain.ErrInvalidTheme, err)
	case strings.Contains(errMsg, domain.ErrStorage.Error()):
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return err
}
