package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/olegkh/autoservice-crm/internal/config"
	"github.com/olegkh/autoservice-crm/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the PostgreSQL connection and configures the pool.
// The returned handle is passed explicitly to every component; there
// is no package-level state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// Migrate runs AutoMigrate for all models and creates the partial
// unique index that enforces at most one open shift per operator.
// The index makes the open-shift check race-free: of two concurrent
// openers, the storage layer rejects the second with a duplicate key.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Service{},
		&models.MasterService{},
		&models.Shift{},
		&models.ShiftLog{},
		&models.Operation{},
		&models.Record{},
		&models.SystemLog{},
	); err != nil {
		return err
	}

	return db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_operator_open ON shifts (operator_id) WHERE end_time IS NULL",
	).Error
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
