package task

import (
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	domain "github.com/megha-ranjith/To-Do/domain/task"
	"github.com/megha-ranjith/To-Do/events"
)

// eventPublisher turns service notifications into bus events. Publishing is
// best-effort: failures are logged and the mutation still succeeds.
type eventPublisher struct {
	bus    mono.EventBus
	logger types.Logger
}

func newEventPublisher(bus mono.EventBus, logger types.Logger) Publisher {
	if bus == nil {
		return noopPublisher{}
	}
	return &eventPublisher{bus: bus, logger: logger}
}

func (p *eventPublisher) TaskCreated(t domain.Task) {
	err := events.TaskCreatedV1.Publish(p.bus, events.TaskCreatedEvent{
		TaskID:    t.ID,
		Title:     t.Title,
		Category:  t.Category,
		Priority:  string(t.Priority),
		DueDate:   t.DueDate,
		CreatedAt: t.CreatedAt.Time,
	}, nil)
	p.report("TaskCreated", t.ID, err)
}

func (p *eventPublisher) TaskUpdated(t domain.Task, fields []string) {
	err := events.TaskUpdatedV1.Publish(p.bus, events.TaskUpdatedEvent{
		TaskID:    t.ID,
		Title:     t.Title,
		Fields:    fields,
		UpdatedAt: time.Now(),
	}, nil)
	p.report("TaskUpdated", t.ID, err)
}

func (p *eventPublisher) TaskToggled(t domain.Task) {
	err := events.TaskToggledV1.Publish(p.bus, events.TaskToggledEvent{
		TaskID:    t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		ToggledAt: time.Now(),
	}, nil)
	p.report("TaskToggled", t.ID, err)
}

func (p *eventPublisher) TaskDeleted(t domain.Task) {
	err := events.TaskDeletedV1.Publish(p.bus, events.TaskDeletedEvent{
		TaskID:    t.ID,
		Title:     t.Title,
		DeletedAt: time.Now(),
	}, nil)
	p.report("TaskDeleted", t.ID, err)
}

func (p *eventPublisher) SettingsUpdated(s domain.Settings) {
	err := events.SettingsUpdatedV1.Publish(p.bus, events.SettingsUpdatedEvent{
		Theme:     s.Theme,
		UpdatedAt: time.Now(),
	}, nil)
	p.report("SettingsUpdated", "", err)
}

func (p *eventPublisher) report(event, taskID string, err error) {
	if err != nil {
		p.logger.Warn("Failed to publish event", "event", event, "task_id", taskID, "error", err)
	}
}
