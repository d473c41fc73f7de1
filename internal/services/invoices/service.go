package invoices

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/forms"
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ListingPath is where successful create/update mutations send the caller.
const ListingPath = "/dashboard/invoices"

// InvoiceStore executes the parameterized statements of the mutation
// pipeline. *repository.InvoiceRepository satisfies it.
type InvoiceStore interface {
	Insert(ctx context.Context, inv models.Invoice) error
	Update(ctx context.Context, inv models.Invoice) error
	Delete(ctx context.Context, id string) error
}

// Invalidator marks a cached scope stale. Invalidation is fire-and-forget:
// it has no error return and can never alter a mutation's outcome.
type Invalidator interface {
	Invalidate(ctx context.Context, scope string)
}

// AuditRecorder persists one entry per completed mutation.
type AuditRecorder interface {
	Record(ctx context.Context, entry models.MutationAuditLog) error
}

// Service orchestrates validate → persist → invalidate → conclude for a
// single mutation attempt. It holds no per-request state.
type Service struct {
	store InvoiceStore
	cache Invalidator
	audit AuditRecorder
	now   func() time.Time
}

func NewService(store InvoiceStore, invalidator Invalidator, audit AuditRecorder) *Service {
	return &Service{
		store: store,
		cache: invalidator,
		audit: audit,
		now:   time.Now,
	}
}

// Create validates the form against the create shape, assigns id and date,
// and inserts the invoice. The redirect is returned only after the insert
// and the cache invalidation fully complete.
func (s *Service) Create(ctx context.Context, form map[string]string) Outcome {
	res := forms.CreateInvoice.Validate(form)
	if !res.OK() {
		return validationFailed(res.Errors, "Missing fields. Failed to create invoice.")
	}

	inv := models.Invoice{
		ID:          uuid.NewString(),
		CustomerID:  res.Values.CustomerID,
		AmountCents: res.Values.AmountCents,
		Status:      res.Values.Status,
		Date:        s.now().Format("2006-01-02"),
	}

	if err := s.store.Insert(ctx, inv); err != nil {
		log.Printf("invoice insert failed: %v", err)
		return persistenceFailed("Database error: Failed to create invoice.")
	}

	s.cache.Invalidate(ctx, cache.InvoicesScope)
	s.recordAudit(ctx, inv.ID, "create", inv)
	return redirect(ListingPath)
}

// Update validates against the update shape (the id comes from route
// context, not the form body) and rewrites customer, amount and status for
// the given invoice. The creation date is never touched.
func (s *Service) Update(ctx context.Context, id string, form map[string]string) Outcome {
	candidate := make(map[string]string, len(form)+1)
	for k, v := range form {
		candidate[k] = v
	}
	candidate["id"] = id

	res := forms.UpdateInvoice.Validate(candidate)
	if !res.OK() {
		return validationFailed(res.Errors, "Missing fields. Failed to update invoice.")
	}

	inv := models.Invoice{
		ID:          res.Values.ID,
		CustomerID:  res.Values.CustomerID,
		AmountCents: res.Values.AmountCents,
		Status:      res.Values.Status,
	}

	if err := s.store.Update(ctx, inv); err != nil {
		log.Printf("invoice update failed: %v", err)
		return persistenceFailed("Database error: Failed to update invoice.")
	}

	s.cache.Invalidate(ctx, cache.InvoicesScope)
	s.recordAudit(ctx, inv.ID, "update", inv)
	return redirect(ListingPath)
}

// Delete removes the invoice and reports a message instead of redirecting;
// deletes are invoked from within the listing itself. Deleting an unknown
// id affects zero rows, still counts as success and still invalidates.
func (s *Service) Delete(ctx context.Context, id string) Outcome {
	if err := s.store.Delete(ctx, id); err != nil {
		log.Printf("invoice delete failed: %v", err)
		return persistenceFailed("Database error: Failed to delete invoice.")
	}

	s.cache.Invalidate(ctx, cache.InvoicesScope)
	s.recordAudit(ctx, id, "delete", nil)
	return success("Deleted invoice.")
}

func (s *Service) recordAudit(ctx context.Context, invoiceID, action string, payload interface{}) {
	details, err := json.Marshal(map[string]interface{}{
		"action":  action,
		"payload": payload,
	})
	if err != nil {
		return
	}
	entry := models.MutationAuditLog{
		ID:        uuid.NewString(),
		InvoiceID: invoiceID,
		Action:    action,
		Details:   datatypes.JSON(details),
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		log.Printf("audit record failed for invoice %s: %v", invoiceID, err)
	}
}
