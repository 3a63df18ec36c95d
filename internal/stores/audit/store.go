package audit

import (
	"context"
	"fmt"

	"github.com/ethanbaker/notion-records/pkg/utils"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store journals record operations
type Store interface {
	Record(ctx context.Context, entry Entry) error
	ListByRecordID(ctx context.Context, recordID string) ([]Entry, error)
	Close() error
}

// NewStoreFromConfig opens a Postgres store when POSTGRES_DSN is set, else the
// MySQL store described by the MYSQL_* settings, or an in-memory store when
// MYSQL_DATABASE is not set either
func NewStoreFromConfig(cfg *utils.Config, log zerolog.Logger) (Store, error) {
	if dsn := cfg.Get("POSTGRES_DSN"); dsn != "" {
		store, err := NewPostgresStore(dsn)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	dbConfig := mysqldriver.Config{
		User:                 cfg.Get("MYSQL_USER"),
		Passwd:               cfg.Get("MYSQL_PASSWORD"),
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%s", cfg.GetWithDefault("MYSQL_HOST", "localhost"), cfg.GetWithDefault("MYSQL_PORT", "3306")),
		DBName:               cfg.Get("MYSQL_DATABASE"),
		ParseTime:            true,
		AllowNativePasswords: true,
	}

	if dbConfig.DBName == "" {
		log.Warn().Str("module", "audit").Msg("MYSQL_DATABASE not set, using in-memory audit store (entries will not persist across restarts)")
		return NewInMemoryStore(), nil
	}

	store, err := NewMySqlStore(dbConfig.FormatDSN())
	if err != nil {
		return nil, err
	}
	return store, nil
}

// GormStore persists audit entries using GORM
type GormStore struct {
	db *gorm.DB
}

// NewMySqlStore creates a new audit store with a MySQL connection
func NewMySqlStore(databaseURL string) (*GormStore, error) {
	return openGormStore(mysql.Open(databaseURL))
}

// NewPostgresStore creates a new audit store with a Postgres connection
func NewPostgresStore(dsn string) (*GormStore, error) {
	return openGormStore(postgres.Open(dsn))
}

func openGormStore(dialector gorm.Dialector) (*GormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Auto-migrate tables
	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return &GormStore{db: db}, nil
}

// Record stores a new entry
func (s *GormStore) Record(ctx context.Context, entry Entry) error {
	model := toModel(prepare(entry))

	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}
	return nil
}

// ListByRecordID returns the entries of a record, oldest first
func (s *GormStore) ListByRecordID(ctx context.Context, recordID string) ([]Entry, error) {
	if recordID == "" {
		return nil, fmt.Errorf("record_id cannot be empty")
	}

	var models []EntryModel
	result := s.db.WithContext(ctx).
		Where("record_id = ?", recordID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", result.Error)
	}

	entries := make([]Entry, len(models))
	for i, model := range models {
		entries[i] = fromModel(model)
	}
	return entries, nil
}

// Close closes the database connection
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
