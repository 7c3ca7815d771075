package models

// AuditLog records every create and update of a salary or expense.
type AuditLog struct {
	Base
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null;index:idx_audit_resource" json:"resourceType"`
	ResourceID   string `gorm:"type:uuid;index:idx_audit_resource" json:"resourceId"`
	IPAddress    string `json:"ipAddress"`
	Changes      string `json:"changes,omitempty"`
}
