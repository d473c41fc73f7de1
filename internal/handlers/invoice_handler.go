package handler

import (
	"encoding/json"
	"net/http"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/repository"
	service "invoice-dashboard-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service      *service.Service
	invoiceRepo  *repository.InvoiceRepository
	customerRepo *repository.CustomerRepository
	cache        *cache.Cache
}

func NewInvoiceHandler(
	s *service.Service,
	invoiceRepo *repository.InvoiceRepository,
	customerRepo *repository.CustomerRepository,
	pageCache *cache.Cache,
) *InvoiceHandler {
	return &InvoiceHandler{
		service:      s,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		cache:        pageCache,
	}
}

// List serves the invoice listing. The unfiltered listing is cached under
// the invoices scope; mutations invalidate it.
func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Query("query")
	status := c.Query("status")
	cacheable := query == "" && status == ""

	if cacheable {
		if data, ok := h.cache.Get(ctx, cache.InvoicesScope); ok {
			c.Data(http.StatusOK, "application/json", data)
			return
		}
	}

	var statuses []string
	if status != "" && status != "all" {
		statuses = []string{status}
	}

	invoices, err := h.invoiceRepo.Search(ctx, query, statuses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load invoices"})
		return
	}

	data, err := json.Marshal(gin.H{"invoices": invoices})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load invoices"})
		return
	}

	if cacheable {
		h.cache.Set(ctx, cache.InvoicesScope, data)
	}
	c.Data(http.StatusOK, "application/json", data)
}

// Edit returns one invoice together with the customer dimension, for
// populating the edit form.
func (h *InvoiceHandler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	invoice, err := h.invoiceRepo.GetByID(ctx, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}

	customers, err := h.customerRepo.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice, "customers": customers})
}

// NewForm returns the customer dimension for the create form.
func (h *InvoiceHandler) NewForm(c *gin.Context) {
	customers, err := h.customerRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	out := h.service.Create(c.Request.Context(), invoiceForm(c))
	respond(c, out)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	out := h.service.Update(c.Request.Context(), c.Param("id"), invoiceForm(c))
	respond(c, out)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	out := h.service.Delete(c.Request.Context(), c.Param("id"))
	respond(c, out)
}

// invoiceForm flattens the submitted form into the pipeline's input shape.
func invoiceForm(c *gin.Context) map[string]string {
	return map[string]string{
		"customerId": c.PostForm("customerId"),
		"amount":     c.PostForm("amount"),
		"status":     c.PostForm("status"),
	}
}

// respond maps a mutation outcome onto the wire. The variants are mutually
// exclusive; a redirect is a plain 303, never an error body.
func respond(c *gin.Context, out service.Outcome) {
	switch out.Kind {
	case service.OutcomeRedirect:
		c.Redirect(http.StatusSeeOther, out.RedirectTo)
	case service.OutcomeValidationFailed:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": out.Errors, "message": out.Message})
	case service.OutcomePersistenceFailed:
		c.JSON(http.StatusInternalServerError, gin.H{"message": out.Message})
	case service.OutcomeSuccess:
		c.JSON(http.StatusOK, gin.H{"message": out.Message})
	}
}
