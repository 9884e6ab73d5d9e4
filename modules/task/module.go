package task

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	kvjetstream "github.com/go-monolith/mono/plugin/kv-jetstream"
	"github.com/megha-ranjith/To-Do/config"
	"github.com/megha-ranjith/To-Do/events"
	"github.com/megha-ranjith/To-Do/storage"
	"github.com/redis/go-redis/v9"
)

// TaskModule owns the task document and serves the task operations.
type TaskModule struct {
	cfg      config.StorageConfig
	store    storage.DocumentStore
	service  *Service
	kv       *kvjetstream.PluginModule
	eventBus mono.EventBus
	logger   types.Logger
}

var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.UsePluginModule = (*TaskModule)(nil)
var _ mono.EventBusAwareModule = (*TaskModule)(nil)
var _ mono.EventEmitterModule = (*TaskModule)(nil)
var _ mono.HealthCheckableModule = (*TaskModule)(nil)

// NewModule creates a task module that opens its store from cfg on Start.
func NewModule(cfg config.StorageConfig, logger types.Logger) *TaskModule {
	return &TaskModule{cfg: cfg, logger: logger}
}

// NewModuleWithStore creates a task module over an already opened store.
func NewModuleWithStore(store storage.DocumentStore, logger types.Logger) *TaskModule {
	return &TaskModule{
		cfg:    config.StorageConfig{Driver: "custom"},
		store:  store,
		logger: logger,
	}
}

func (m *TaskModule) Name() string {
	return "task"
}

// SetPlugin receives the kv-jetstream plugin used by the kv storage driver.
func (m *TaskModule) SetPlugin(alias string, plugin mono.PluginModule) {
	if alias != "kv" {
		return
	}
	kv, ok := plugin.(*kvjetstream.PluginModule)
	if !ok {
		m.logger.Error("Invalid plugin type for kv",
			"alias", alias,
			"expected", "*kvjetstream.PluginModule")
		return
	}
	m.kv = kv
	m.logger.Info("Received KV plugin", "alias", alias)
}

func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCreatedV1.ToBase(),
		events.TaskUpdatedV1.ToBase(),
		events.TaskToggledV1.ToBase(),
		events.TaskDeletedV1.ToBase(),
		events.SettingsUpdatedV1.ToBase(),
	}
}

func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list-tasks", json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register list-tasks service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "create-task", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-task", json.Unmarshal, json.Marshal, m.updateTask,
	); err != nil {
		return fmt.Errorf("failed to register update-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-task", json.Unmarshal, json.Marshal, m.deleteTask,
	); err != nil {
		return fmt.Errorf("failed to register delete-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "toggle-task", json.Unmarshal, json.Marshal, m.toggleTask,
	); err != nil {
		return fmt.Errorf("failed to register toggle-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-dashboard", json.Unmarshal, json.Marshal, m.getDashboard,
	); err != nil {
		return fmt.Errorf("failed to register get-dashboard service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-kanban", json.Unmarshal, json.Marshal, m.getKanban,
	); err != nil {
		return fmt.Errorf("failed to register get-kanban service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-calendar", json.Unmarshal, json.Marshal, m.getCalendar,
	); err != nil {
		return fmt.Errorf("failed to register get-calendar service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-settings", json.Unmarshal, json.Marshal, m.getSettings,
	); err != nil {
		return fmt.Errorf("failed to register get-settings service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-settings", json.Unmarshal, json.Marshal, m.updateSettings,
	); err != nil {
		return fmt.Errorf("failed to register update-settings service: %w", err)
	}

	m.logger.Info("Registered task services",
		"services", "list-tasks, create-task, update-task, delete-task, toggle-task, get-dashboard, get-kanban, get-calendar, get-settings, update-settings")
	return nil
}

// Start opens the configured store and builds the service.
func (m *TaskModule) Start(_ context.Context) error {
	if m.store == nil {
		store, err := m.openStore()
		if err != nil {
			return err
		}
		m.store = store
	}

	if m.eventBus == nil {
		m.logger.Warn("eventBus not set, events will not be published")
	}

	m.service = NewService(m.store, WithPublisher(newEventPublisher(m.eventBus, m.logger)))
	m.logger.Info("Task module started", "driver", m.cfg.Driver)
	return nil
}

func (m *TaskModule) openStore() (storage.DocumentStore, error) {
	switch m.cfg.Driver {
	case config.DriverFile, "":
		return storage.NewFileStore(m.cfg.DataFile), nil
	case config.DriverMemory:
		return storage.NewMemoryStore(), nil
	case config.DriverSQLite:
		db, err := storage.OpenSQLite(m.cfg.DBPath, m.cfg.DBDebug)
		if err != nil {
			return nil, err
		}
		return storage.NewSQLiteStore(db)
	case config.DriverKV:
		if m.kv == nil {
			return nil, fmt.Errorf("required plugin 'kv' not registered")
		}
		bucket := m.kv.Bucket(storage.KVBucketName)
		if bucket == nil {
			return nil, fmt.Errorf("bucket '%s' not found in KV plugin", storage.KVBucketName)
		}
		return storage.NewKVStore(bucket), nil
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     m.cfg.RedisAddr,
			Password: m.cfg.RedisPassword,
		})
		return storage.NewRedisStore(client, m.cfg.RedisKey), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", m.cfg.Driver)
	}
}

func (m *TaskModule) Stop(_ context.Context) error {
	if closer, ok := m.store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
	}
	m.logger.Info("Task module stopped")
	return nil
}

// Health reports whether the store is reachable.
func (m *TaskModule) Health(ctx context.Context) mono.HealthStatus {
	if m.service == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "store not initialized",
		}
	}

	if pinger, ok := m.store.(interface{ Ping(context.Context) error }); ok {
		if err := pinger.Ping(ctx); err != nil {
			return mono.HealthStatus{
				Healthy: false,
				Message: fmt.Sprintf("store ping failed: %v", err),
			}
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": m.cfg.Driver,
		},
	}
}

// Service returns the task service. It is nil until Start.
func (m *TaskModule) Service() *Service {
	return m.service
}
