// Package gorm provides GORM models and repositories backing the profile
// and audit persistence on SQLite.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// profileRowID pins the singleton profile row: the system has exactly one
// logical user.
const profileRowID = 1

// ProfileModel is the singleton persisted profile row.
type ProfileModel struct {
	ID             uint          `gorm:"primaryKey"`
	Location       string        `gorm:"type:varchar(255);not null"`
	WeatherEnabled bool          `gorm:"not null;default:true"`
	Preferences    PreferenceMap `gorm:"type:json"`
	UpdatedAt      time.Time
}

// TableName overrides the table name.
func (ProfileModel) TableName() string { return "profiles" }

// HistoryEntryModel is one accepted recommendation. Rows are append-only.
type HistoryEntryModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Timestamp time.Time `gorm:"index;not null"`
	Mood      string    `gorm:"type:varchar(32);not null"`
	Food      string    `gorm:"type:text;not null"`
}

// TableName overrides the table name.
func (HistoryEntryModel) TableName() string { return "history_entries" }

// AuditRecordModel is one raw request payload. Append-only, never read back
// by the application.
type AuditRecordModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	Payload   JSONMap `gorm:"type:json"`
}

// TableName overrides the table name.
func (AuditRecordModel) TableName() string { return "audit_records" }

// PreferenceMap stores the mood→liked-food-substrings mapping as JSON.
type PreferenceMap map[string][]string

// Value implements driver.Valuer.
func (m PreferenceMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *PreferenceMap) Scan(value any) error {
	if value == nil {
		*m = make(PreferenceMap)
		return nil
	}
	data, err := bytesOf(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, m)
}

// JSONMap stores arbitrary JSON objects.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}
	data, err := bytesOf(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, m)
}

func bytesOf(value any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("cannot scan %T into JSON column", value)
	}
}
