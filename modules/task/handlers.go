package task

import (
	"context"
	"errors"

	"github.com/go-monolith/mono"
	domain "github.com/megha-ranjith/To-Do/domain/task"
)

// Request-reply handlers. Each one delegates to the Service.
//
// Rejections a client can cause are returned inside the reply. Only
// failures (storage, decoding) are returned as errors, which the framework
// logs and sends back as an error reply.

// rejection reports the client-facing reason when err is an expected
// rejection rather than a failure.
func rejection(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrInvalidTheme):
		return err.Error(), true
	}
	return "", false
}

func (m *TaskModule) taskReply(op string, t *domain.Task, err error) (TaskReply, error) {
	if err != nil {
		if reason, ok := rejection(err); ok {
			m.logger.Debug("Request rejected", "operation", op, "reason", reason)
			return TaskReply{Error: reason}, nil
		}
		return TaskReply{}, err
	}
	return TaskReply{Task: t}, nil
}

func (m *TaskModule) listTasks(ctx context.Context, _ EmptyRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.service.ListTasks(ctx)
	if err != nil {
		return ListTasksResponse{}, err
	}
	return ListTasksResponse{Tasks: tasks, Total: len(tasks)}, nil
}

func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskReply, error) {
	t, err := m.service.CreateTask(ctx, &req)
	if err == nil {
		m.logger.Info("Task created", "id", t.ID, "title", t.Title)
	}
	return m.taskReply("create-task", t, err)
}

func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskReply, error) {
	t, err := m.service.UpdateTask(ctx, &req)
	return m.taskReply("update-task", t, err)
}

func (m *TaskModule) deleteTask(ctx context.Context, req TaskIDRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.service.DeleteTask(ctx, req.TaskID); err != nil {
		return DeleteTaskResponse{}, err
	}
	return DeleteTaskResponse{Success: true}, nil
}

func (m *TaskModule) toggleTask(ctx context.Context, req TaskIDRequest, _ *mono.Msg) (TaskReply, error) {
	t, err := m.service.ToggleTask(ctx, req.TaskID)
	return m.taskReply("toggle-task", t, err)
}

func (m *TaskModule) getDashboard(ctx context.Context, _ EmptyRequest, _ *mono.Msg) (DashboardResponse, error) {
	resp, err := m.service.Dashboard(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}
	return *resp, nil
}

func (m *TaskModule) getKanban(ctx context.Context, _ EmptyRequest, _ *mono.Msg) (KanbanResponse, error) {
	resp, err := m.service.Kanban(ctx)
	if err != nil {
		return KanbanResponse{}, err
	}
	return *resp, nil
}

func (m *TaskModule) getCalendar(ctx context.Context, _ EmptyRequest, _ *mono.Msg) (CalendarResponse, error) {
	resp, err := m.service.Calendar(ctx)
	if err != nil {
		return CalendarResponse{}, err
	}
	return *resp, nil
}

func (m *TaskModule) getSettings(ctx context.Context, _ EmptyRequest, _ *mono.Msg) (domain.Settings, error) {
	settings, err := m.service.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	return *settings, nil
}

func (m *TaskModule) updateSettings(ctx context.Context, req UpdateSettingsRequest, _ *mono.Msg) (SettingsReply, error) {
	settings, err := m.service.UpdateSettings(ctx, &req)
	if err != nil {
		if reason, ok := rejection(err); ok {
			m.logger.Debug("Request rejected", "operation", "update-settings", "reason", reason)
			return SettingsReply{Error: reason}, nil
		}
		return SettingsReply{}, err
	}
	m.logger.Info("Settings updated", "theme", settings.Theme)
	return SettingsReply{Settings: settings}, nil
}
