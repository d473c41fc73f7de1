package repository

import (
	"context"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Record appends one audit entry for a completed mutation.
func (r *AuditLogRepository) Record(ctx context.Context, entry models.MutationAuditLog) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}
