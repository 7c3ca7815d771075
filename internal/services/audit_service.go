package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// Audit actions.
const (
	ActionCreateSalary  = "CREATE_SALARY"
	ActionUpdateSalary  = "UPDATE_SALARY"
	ActionCreateExpense = "CREATE_EXPENSE"
	ActionUpdateExpense = "UPDATE_EXPENSE"
)

// Audited resource types.
const (
	ResourceSalary  = "salary"
	ResourceExpense = "expense"
)

// AuditEntry describes one write to be recorded. Snapshot is stored as JSON
// and is usually the record as it looks after the write.
type AuditEntry struct {
	Action       string
	ResourceType string
	ResourceID   string
	IPAddress    string
	Snapshot     interface{}
}

// auditService records and reads the write history of salaries and expenses.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record stores an audit entry. Failures are logged and swallowed so that
// auditing never fails the write it describes.
func (s *auditService) Record(ctx context.Context, entry AuditEntry) {
	log := logger.Named("audit")

	var snapshot string
	if entry.Snapshot != nil {
		data, err := json.Marshal(entry.Snapshot)
		if err != nil {
			log.Errorw("failed to marshal audit snapshot", "error", err, "action", entry.Action)
			snapshot = "{}"
		} else {
			snapshot = string(data)
		}
	}

	row := &models.AuditLog{
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		IPAddress:    entry.IPAddress,
		Changes:      snapshot,
	}

	// The write already happened; a cancelled request must not drop its entry.
	if err := s.db.WithContext(context.WithoutCancel(ctx)).Create(row).Error; err != nil {
		log.Errorw("failed to create audit log entry",
			"error", err,
			"action", entry.Action,
			"resource_type", entry.ResourceType,
			"resource_id", entry.ResourceID,
		)
	}
}

// History returns the audit entries of one resource, oldest first.
func (s *auditService) History(ctx context.Context, resourceType, resourceID string) ([]models.AuditLog, error) {
	entries := make([]models.AuditLog, 0)
	if err := s.db.WithContext(ctx).
		Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entries, nil
}
