package models

import (
	"time"

	"fintrack/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Records are never deleted,
// so there is no soft-delete column.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}

// All returns every persisted model, in dependency order, for auto-migration.
func All() []interface{} {
	return []interface{}{
		&Salary{},
		&Expense{},
		&AuditLog{},
	}
}
