package models

import (
	"time"

	"gorm.io/datatypes"
)

// MutationAuditLog records one completed invoice mutation. Details carries the
// operation payload as JSON for later inspection.
type MutationAuditLog struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	InvoiceID string `gorm:"index"`
	Action    string `gorm:"index"`
	Details   datatypes.JSON
	CreatedAt time.Time
}
