package models

import "time"

// Customer is a read-only dimension: rows are referenced by invoices and
// fetched for form population, never mutated by the dashboard itself.
type Customer struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"index"`
	Email     string
	ImageURL  string
	CreatedAt time.Time
}
