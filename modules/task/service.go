package task

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	domain "github.com/megha-ranjith/To-Do/domain/task"
	"github.com/megha-ranjith/To-Do/storage"
)

// Publisher is notified after a mutation has been saved.
type Publisher interface {
	TaskCreated(t domain.Task)
	TaskUpdated(t domain.Task, fields []string)
	TaskToggled(t domain.Task)
	TaskDeleted(t domain.Task)
	SettingsUpdated(s domain.Settings)
}

type noopPublisher struct{}

func (noopPublisher) TaskCreated(domain.Task)           {}
func (noopPublisher) TaskUpdated(domain.Task, []string) {}
func (noopPublisher) TaskToggled(domain.Task)           {}
func (noopPublisher) TaskDeleted(domain.Task)           {}
func (noopPublisher) SettingsUpdated(domain.Settings)   {}

// Service implements the task operations over a DocumentStore. Every
// mutation loads the whole document, changes it and saves it back while
// holding mu.
type Service struct {
	store     storage.DocumentStore
	publisher Publisher
	now       func() time.Time
	newID     func() string

	mu sync.Mutex
}

var _ TaskPort = (*Service)(nil)

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithPublisher sets the receiver of change notifications.
func WithPublisher(p Publisher) ServiceOption {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how task ids are generated.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a task service.
func NewService(store storage.DocumentStore, opts ...ServiceOption) *Service {
	s := &Service{
		store:     store,
		publisher: noopPublisher{},
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) load(ctx context.Context) (*domain.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return doc, nil
}

func (s *Service) save(ctx context.Context, doc *domain.Document) error {
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// CreateTask validates and appends a new task.
func (s *Service) CreateTask(ctx context.Context, req *CreateTaskRequest) (*domain.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	t := domain.Task{
		ID:          s.newID(),
		Title:       title,
		Description: req.Description,
		Category:    orDefault(req.Category, domain.DefaultCategory),
		Priority:    domain.Priority(orDefault(req.Priority, string(domain.DefaultPriority))),
		DueDate:     req.DueDate,
		Completed:   false,
		AssignedTo:  orDefault(req.AssignedTo, domain.DefaultAssignedTo),
		CreatedAt:   domain.NewTimestamp(s.now()),
	}
	doc.Tasks = append(doc.Tasks, t)

	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}

	s.publisher.TaskCreated(t)
	return &t, nil
}

// ListTasks returns every task in stored order.
func (s *Service) ListTasks(ctx context.Context) ([]domain.Task, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

// UpdateTask merges the non-nil fields of req into the task.
func (s *Service) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := doc.IndexOf(req.TaskID)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}

	t := &doc.Tasks[idx]
	fields := applyUpdate(t, req)

	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}

	updated := *t
	s.publisher.TaskUpdated(updated, fields)
	return &updated, nil
}

// applyUpdate copies the allow-listed fields and reports which were set.
func applyUpdate(t *domain.Task, req *UpdateTaskRequest) []string {
	var fields []string
	if req.Title != nil {
		t.Title = *req.Title
		fields = append(fields, "title")
	}
	if req.Description != nil {
		t.Description = *req.Description
		fields = append(fields, "description")
	}
	if req.Category != nil {
		t.Category = *req.Category
		fields = append(fields, "category")
	}
	if req.Priority != nil {
		t.Priority = domain.Priority(*req.Priority)
		fields = append(fields, "priority")
	}
	if req.DueDate != nil {
		t.DueDate = *req.DueDate
		fields = append(fields, "due_date")
	}
	if req.AssignedTo != nil {
		t.AssignedTo = *req.AssignedTo
		fields = append(fields, "assigned_to")
	}
	if req.Completed != nil {
		t.Completed = *req.Completed
		fields = append(fields, "completed")
	}
	return fields
}

// DeleteTask removes the task if present. Deleting an unknown id succeeds.
func (s *Service) DeleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}

	var removed *domain.Task
	kept := doc.Tasks[:0]
	for _, t := range doc.Tasks {
		if t.ID == taskID {
			removed = &t
			continue
		}
		kept = append(kept, t)
	}
	doc.Tasks = kept

	if err := s.save(ctx, doc); err != nil {
		return err
	}

	if removed != nil {
		s.publisher.TaskDeleted(*removed)
	}
	return nil
}

// ToggleTask flips the completed flag.
func (s *Service) ToggleTask(ctx context.Context, taskID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := doc.IndexOf(taskID)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}
	doc.Tasks[idx].Completed = !doc.Tasks[idx].Completed

	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}

	toggled := doc.Tasks[idx]
	s.publisher.TaskToggled(toggled)
	return &toggled, nil
}

// Dashboard returns the statistics together with the full list.
func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardResponse{
		Stats: domain.ComputeStats(doc.Tasks, s.now()),
		Tasks: doc.Tasks,
	}, nil
}

// Kanban partitions the tasks by completion.
func (s *Service) Kanban(ctx context.Context) (*KanbanResponse, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	board := domain.PartitionKanban(doc.Tasks)
	return &KanbanResponse{Todo: board.Todo, Done: board.Done}, nil
}

// Calendar groups the tasks by due date.
func (s *Service) Calendar(ctx context.Context) (*CalendarResponse, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	cal := domain.GroupByDueDate(doc.Tasks)
	return &CalendarResponse{
		Tasks:       doc.Tasks,
		Days:        cal.Days,
		Unscheduled: cal.Unscheduled,
	}, nil
}

// GetSettings returns the stored settings.
func (s *Service) GetSettings(ctx context.Context) (*domain.Settings, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	settings := doc.Settings
	return &settings, nil
}

// UpdateSettings changes the theme.
func (s *Service) UpdateSettings(ctx context.Context, req *UpdateSettingsRequest) (*domain.Settings, error) {
	if !domain.ValidTheme(req.Theme) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTheme, req.Theme)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	doc.Settings.Theme = req.Theme

	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}

	settings := doc.Settings
	s.publisher.SettingsUpdated(settings)
	return &settings, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
