package repository

import (
	"context"
	"strings"

	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Insert creates one invoice row.
func (r *InvoiceRepository) Insert(ctx context.Context, inv models.Invoice) error {
	return r.db.WithContext(ctx).Create(&inv).Error
}

// Update writes customer_id, amount and status for the given id. The date
// column is assigned at creation and intentionally left out here.
func (r *InvoiceRepository) Update(ctx context.Context, inv models.Invoice) error {
	return r.db.WithContext(ctx).Model(&models.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"customer_id": inv.CustomerID,
			"amount":      inv.AmountCents,
			"status":      inv.Status,
		}).Error
}

// Delete removes the invoice with the given id. Deleting a missing id
// affects zero rows and is not an error.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id).Error
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Search lists invoices for the dashboard with optional filters.
func (r *InvoiceRepository) Search(ctx context.Context, query string, statuses []string) ([]models.Invoice, error) {
	var invoices []models.Invoice

	dbQuery := r.db.WithContext(ctx).Model(&models.Invoice{}).Order("date DESC")

	if query != "" {
		dbQuery = dbQuery.Where("LOWER(customer_id) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if len(statuses) > 0 {
		dbQuery = dbQuery.Where("status IN ?", statuses)
	}

	err := dbQuery.Find(&invoices).Error
	return invoices, err
}
