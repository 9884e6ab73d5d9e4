package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/google/uuid"
	"github.com/megha-ranjith/To-Do/events"
)

// MaxEntries is how many entries the feed retains.
const MaxEntries = 100

// Entry is one line of the activity feed.
type Entry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	TaskID    string    `json:"task_id,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityModule records task events into a bounded in-memory feed.
type ActivityModule struct {
	entries []Entry
	mu      sync.RWMutex
	logger  types.Logger
}

var _ mono.Module = (*ActivityModule)(nil)
var _ mono.EventConsumerModule = (*ActivityModule)(nil)
var _ mono.ServiceProviderModule = (*ActivityModule)(nil)

func NewModule(logger types.Logger) *ActivityModule {
	return &ActivityModule{
		entries: make([]Entry, 0, MaxEntries),
		logger:  logger,
	}
}

func (m *ActivityModule) Name() string {
	return "activity"
}

func (m *ActivityModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCreatedV1, m.handleTaskCreated, m); err != nil {
		return fmt.Errorf("failed to register TaskCreated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskUpdatedV1, m.handleTaskUpdated, m); err != nil {
		return fmt.Errorf("failed to register TaskUpdated consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskToggledV1, m.handleTaskToggled, m); err != nil {
		return fmt.Errorf("failed to register TaskToggled consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskDeletedV1, m.handleTaskDeleted, m); err != nil {
		return fmt.Errorf("failed to register TaskDeleted consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.SettingsUpdatedV1, m.handleSettingsUpdated, m); err != nil {
		return fmt.Errorf("failed to register SettingsUpdated consumer: %w", err)
	}

	m.logger.Info("Registered event consumers",
		"events", "TaskCreated, TaskUpdated, TaskToggled, TaskDeleted, SettingsUpdated")
	return nil
}

func (m *ActivityModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list-activity", json.Unmarshal, json.Marshal, m.listActivity,
	); err != nil {
		return fmt.Errorf("failed to register list-activity service: %w", err)
	}
	return nil
}

func (m *ActivityModule) handleTaskCreated(_ context.Context, event events.TaskCreatedEvent, _ *mono.Msg) error {
	m.record("task_created", event.TaskID, fmt.Sprintf("Created '%s'", event.Title))
	return nil
}

func (m *ActivityModule) handleTaskUpdated(_ context.Context, event events.TaskUpdatedEvent, _ *mono.Msg) error {
	m.record("task_updated", event.TaskID, fmt.Sprintf("Updated '%s' (%d fields)", event.Title, len(event.Fields)))
	return nil
}

func (m *ActivityModule) handleTaskToggled(_ context.Context, event events.TaskToggledEvent, _ *mono.Msg) error {
	state := "reopened"
	if event.Completed {
		state = "completed"
	}
	m.record("task_toggled", event.TaskID, fmt.Sprintf("Marked '%s' %s", event.Title, state))
	return nil
}

func (m *ActivityModule) handleTaskDeleted(_ context.Context, event events.TaskDeletedEvent, _ *mono.Msg) error {
	m.record("task_deleted", event.TaskID, fmt.Sprintf("Deleted '%s'", event.Title))
	return nil
}

func (m *ActivityModule) handleSettingsUpdated(_ context.Context, event events.SettingsUpdatedEvent, _ *mono.Msg) error {
	m.record("settings_updated", "", fmt.Sprintf("Switched to %s theme", event.Theme))
	return nil
}

func (m *ActivityModule) record(entryType, taskID, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{
		ID:        uuid.New().String(),
		Type:      entryType,
		TaskID:    taskID,
		Message:   message,
		Timestamp: time.Now(),
	})
	if overflow := len(m.entries) - MaxEntries; overflow > 0 {
		m.entries = append(m.entries[:0:0], m.entries[overflow:]...)
	}
	m.logger.Debug("Activity recorded", "type", entryType, "task_id", taskID)
}

// Recent returns up to limit entries, newest first. A limit <= 0 returns all.
func (m *ActivityModule) Recent(limit int) []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]Entry, 0, n)
	for i := len(m.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, m.entries[i])
	}
	return result
}

func (m *ActivityModule) listActivity(_ context.Context, req ListActivityRequest, _ *mono.Msg) (ListActivityResponse, error) {
	return ListActivityResponse{Entries: m.Recent(req.Limit)}, nil
}

func (m *ActivityModule) Start(_ context.Context) error {
	m.logger.Info("Activity module started - listening for task events")
	return nil
}

func (m *ActivityModule) Stop(_ context.Context) error {
	m.logger.Info("Activity module stopped")
	return nil
}
