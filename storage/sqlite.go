package storage

import (
	"context"
	"fmt"

	"github.com/megha-ranjith/To-Do/domain/task"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// taskRecord is one row of the tasks table. Position keeps document order.
type taskRecord struct {
	ID          string `gorm:"primaryKey"`
	Position    int    `gorm:"index;not null"`
	Title       string
	Description string
	Category    string
	Priority    string
	DueDate     string
	Completed   bool
	AssignedTo  string
	CreatedText string `gorm:"column:created_at"`
}

func (taskRecord) TableName() string { return "tasks" }

// settingRecord is one key/value row of the settings table.
type settingRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (settingRecord) TableName() string { return "settings" }

const themeSettingKey = "theme"

// SQLiteStore keeps the document in two SQLite tables through GORM.
type SQLiteStore struct {
	db *gorm.DB
}

var _ DocumentStore = (*SQLiteStore)(nil)

// OpenSQLite opens the database at path. debug enables SQL logging.
func OpenSQLite(path string, debug bool) (*gorm.DB, error) {
	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// NewSQLiteStore migrates the schema and returns a store over db.
func NewSQLiteStore(db *gorm.DB) (*SQLiteStore, error) {
	if err := db.AutoMigrate(&taskRecord{}, &settingRecord{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Load reads every task in position order plus the settings.
func (s *SQLiteStore) Load(ctx context.Context) (*task.Document, error) {
	db := s.db.WithContext(ctx)

	var records []taskRecord
	if err := db.Order("position").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: load tasks: %v", task.ErrStorage, err)
	}

	var settings []settingRecord
	if err := db.Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("%w: load settings: %v", task.ErrStorage, err)
	}

	doc := task.NewDocument()
	for _, r := range records {
		doc.Tasks = append(doc.Tasks, task.Task{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Priority:    task.Priority(r.Priority),
			DueDate:     r.DueDate,
			Completed:   r.Completed,
			AssignedTo:  r.AssignedTo,
			CreatedAt:   task.TimestampFromText(r.CreatedText),
		})
	}
	for _, kv := range settings {
		if kv.Key == themeSettingKey {
			doc.Settings.Theme = kv.Value
		}
	}
	return doc, nil
}

// Save replaces all rows in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, doc *task.Document) error {
	records := make([]taskRecord, 0, len(doc.Tasks))
	for i, t := range doc.Tasks {
		records = append(records, taskRecord{
			ID:          t.ID,
			Position:    i,
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Priority:    string(t.Priority),
			DueDate:     t.DueDate,
			Completed:   t.Completed,
			AssignedTo:  t.AssignedTo,
			CreatedText: t.CreatedAt.Text(),
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&taskRecord{}).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}
		return tx.Save(&settingRecord{Key: themeSettingKey, Value: doc.Settings.Theme}).Error
	})
	if err != nil {
		return fmt.Errorf("%w: save document: %v", task.ErrStorage, err)
	}
	return nil
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
