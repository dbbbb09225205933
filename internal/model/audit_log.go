package model

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog maps to the audit_logs table. Entries are fire-and-forget;
// write failures must never abort the operation being audited.
type AuditLog struct {
	AuditID     string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"audit_id"`
	ActorID     string         `gorm:"type:uuid;not null;index"                       json:"actor_id"`
	ActorRole   string         `gorm:"type:varchar(20);not null"                      json:"actor_role"`
	Action      string         `gorm:"type:varchar(50);not null;index"                json:"action"`
	Description string         `gorm:"type:text;not null"                             json:"description"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"                                     json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (AuditLog) TableName() string { return "audit_logs" }
