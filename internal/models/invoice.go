package models

import (
	"time"
)

// Invoice statuses accepted by the dashboard.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

type Invoice struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	CustomerID string `gorm:"index"`
	// AmountCents holds the amount in minor units to avoid floating-point drift.
	AmountCents int64  `gorm:"column:amount"`
	Status      string `gorm:"index"`
	// Date is the creation date in YYYY-MM-DD form, assigned once and never updated.
	Date      string `gorm:"type:date"`
	CreatedAt time.Time
}
