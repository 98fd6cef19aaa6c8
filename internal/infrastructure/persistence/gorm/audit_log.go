package gorm

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/ports/outbound"
	apperrors "github.com/mrunal1324/FOMO---Food-Mood/pkg/errors"
)

// AuditLog appends raw request payloads to the audit_records table. The
// table is write-only from the application's point of view.
type AuditLog struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAuditLog creates an audit log.
func NewAuditLog(db *gorm.DB, logger *zap.Logger) outbound.AuditLog {
	return &AuditLog{
		db:     db,
		logger: logger.Named("audit-log"),
	}
}

// Append stores one payload.
func (l *AuditLog) Append(ctx context.Context, payload map[string]any) error {
	record := AuditRecordModel{Payload: JSONMap(payload)}
	if err := l.db.WithContext(ctx).Create(&record).Error; err != nil {
		return apperrors.NewPersistenceError("append audit record", err)
	}
	return nil
}
