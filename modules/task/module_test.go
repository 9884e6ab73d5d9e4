package task

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	kvjetstream "github.com/go-monolith/mono/plugin/kv-jetstream"
	"github.com/megha-ranjith/To-Do/config"
	domain "github.com/megha-ranjith/To-Do/domain/task"
	"github.com/megha-ranjith/To-Do/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLogger implements types.Logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)          {}
func (m *mockLogger) Info(msg string, args ...any)           {}
func (m *mockLogger) Warn(msg string, args ...any)           {}
func (m *mockLogger) Error(msg string, args ...any)          {}
func (m *mockLogger) With(args ...any) types.Logger          { return m }
func (m *mockLogger) WithError(err error) types.Logger       { return m }
func (m *mockLogger) WithModule(module string) types.Logger { return m }

func startModule(t *testing.T, m *TaskModule) *TaskModule {
	t.Helper()
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(func() { _ = m.Stop(context.Background()) })
	return m
}

func TestModule_Name(t *testing.T) {
	assert.Equal(t, "task", NewModule(config.StorageConfig{}, &mockLogger{}).Name())
}

func TestModule_OpenStore(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.StorageConfig
		wantErr bool
	}{
		{"file", config.StorageConfig{Driver: config.DriverFile, DataFile: filepath.Join(dir, "tasks_data.json")}, false},
		{"memory", config.StorageConfig{Driver: config.DriverMemory}, false},
		{"sqlite", config.StorageConfig{Driver: config.DriverSQLite, DBPath: filepath.Join(dir, "tasks.db")}, false},
		{"kv without plugin", config.StorageConfig{Driver: config.DriverKV}, true},
		{"unknown", config.StorageConfig{Driver: "mongo"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModule(tt.cfg, &mockLogger{})
			err := m.Start(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = m.Stop(context.Background()) })

			status := m.Health(context.Background())
			assert.True(t, status.Healthy, status.Message)
			assert.Equal(t, tt.cfg.Driver, status.Details["driver"])
		})
	}
}

func TestModule_HealthBeforeStart(t *testing.T) {
	m := NewModule(config.StorageConfig{Driver: config.DriverMemory}, &mockLogger{})
	assert.False(t, m.Health(context.Background()).Healthy)
}

func TestModule_Handlers(t *testing.T) {
	m := startModule(t, NewModuleWithStore(storage.NewMemoryStore(), &mockLogger{}))
	ctx := context.Background()

	reply, err := m.createTask(ctx, CreateTaskRequest{Title: "Buy milk", DueDate: "2020-01-01"}, nil)
	require.NoError(t, err)
	require.NotNil(t, reply.Task)
	created := reply.Task
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, reply.Error)

	// Client mistakes come back inside the reply, not as handler errors.
	reply, err = m.createTask(ctx, CreateTaskRequest{}, nil)
	require.NoError(t, err)
	assert.Nil(t, reply.Task)
	assert.Equal(t, domain.ErrTitleRequired.Error(), reply.Error)

	list, err := m.listTasks(ctx, EmptyRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	reply, err = m.toggleTask(ctx, TaskIDRequest{TaskID: created.ID}, nil)
	require.NoError(t, err)
	require.NotNil(t, reply.Task)
	assert.True(t, reply.Task.Completed)

	reply, err = m.toggleTask(ctx, TaskIDRequest{TaskID: "unknown"}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ErrTaskNotFound.Error(), reply.Error)

	reply, err = m.updateTask(ctx, UpdateTaskRequest{TaskID: "unknown", Title: strPtr("x")}, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.ErrTaskNotFound.Error(), reply.Error)

	dash, err := m.getDashboard(ctx, EmptyRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.Stats.Completed)
	assert.Equal(t, 100.0, dash.Stats.CompletionRate)

	board, err := m.getKanban(ctx, EmptyRequest{}, nil)
	require.NoError(t, err)
	assert.Len(t, board.Done, 1)

	cal, err := m.getCalendar(ctx, EmptyRequest{}, nil)
	require.NoError(t, err)
	require.Len(t, cal.Days, 1)
	assert.Equal(t, "2020-01-01", cal.Days[0].Date)

	settingsReply, err := m.updateSettings(ctx, UpdateSettingsRequest{Theme: "light"}, nil)
	require.NoError(t, err)
	require.NotNil(t, settingsReply.Settings)
	assert.Equal(t, "light", settingsReply.Settings.Theme)

	settingsReply, err = m.updateSettings(ctx, UpdateSettingsRequest{Theme: "neon"}, nil)
	require.NoError(t, err)
	assert.Nil(t, settingsReply.Settings)
	assert.Contains(t, settingsReply.Error, domain.ErrInvalidTheme.Error())

	settings, err := m.getSettings(ctx, EmptyRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "light", settings.Theme)

	deleted, err := m.deleteTask(ctx, TaskIDRequest{TaskID: created.ID}, nil)
	require.NoError(t, err)
	assert.True(t, deleted.Success)

	list, err = m.listTasks(ctx, EmptyRequest{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

// TestModule_KVDriver runs the module against a real kv-jetstream bucket
// hosted by an embedded NATS server.
func TestModule_KVDriver(t *testing.T) {
	app, err := mono.NewMonoApplication(
		mono.WithLogLevel(mono.LogLevelError),
		mono.WithJetStreamStorageDir(t.TempDir()),
	)
	require.NoError(t, err)

	bucket := storage.KVBucketConfig()
	bucket.Storage = kvjetstream.MemoryStorage
	plugin, err := kvjetstream.New(kvjetstream.Config{
		Buckets: []kvjetstream.BucketConfig{bucket},
	})
	require.NoError(t, err)
	require.NoError(t, app.RegisterPlugin(plugin, "kv"))

	require.NoError(t, app.Start(context.Background()))
	t.Cleanup(func() { _ = app.Stop(context.Background()) })

	m := NewModule(config.StorageConfig{Driver: config.DriverKV}, &mockLogger{})
	m.SetPlugin("kv", plugin)
	startModule(t, m)

	ctx := context.Background()
	created, err := m.Service().CreateTask(ctx, &CreateTaskRequest{Title: "stored in kv"})
	require.NoError(t, err)

	// A second store over the same bucket sees the saved document.
	doc, err := storage.NewKVStore(plugin.Bucket(storage.KVBucketName)).Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, created.ID, doc.Tasks[0].ID)
}

func TestModule_HandlersReturnFailures(t *testing.T) {
	store := storage.NewMemoryStore()
	m := startModule(t, NewModuleWithStore(store, &mockLogger{}))
	store.SaveErr = fmt.Errorf("%w: disk full", domain.ErrStorage)

	_, err := m.createTask(context.Background(), CreateTaskRequest{Title: "x"}, nil)
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestUnwrapTaskReply(t *testing.T) {
	_, err := unwrapTaskReply("toggle-task", TaskReply{Error: "task not found"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = unwrapTaskReply("create-task", TaskReply{Error: "title required"})
	assert.ErrorIs(t, err, domain.ErrTitleRequired)

	_, err = unwrapTaskReply("create-task", TaskReply{})
	assert.Error(t, err)

	want := &domain.Task{ID: "a"}
	got, err := unwrapTaskReply("create-task", TaskReply{Task: want})
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"not found", errors.New("toggle-task service call failed: task not found"), domain.ErrTaskNotFound},
		{"title", errors.New("create-task service call failed: title required"), domain.ErrTitleRequired},
		{"theme", errors.New(`invalid theme: "neon"`), domain.ErrInvalidTheme},
		{"storage", errors.New("failed to save tasks: storage error: disk full"), domain.ErrStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapServiceError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	other := errors.New("nats: timeout")
	assert.Equal(t, other, mapServiceError(other))
}
