package gorm

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/config"
)

// NewDatabase opens the SQLite database and migrates the schema.
func NewDatabase(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", cfg.Path, err)
	}

	if err := db.AutoMigrate(&ProfileModel{}, &HistoryEntryModel{}, &AuditRecordModel{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	logger.Info("database ready", zap.String("path", cfg.Path))
	return db, nil
}
