package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerRepo *repository.CustomerRepository
}

func NewCustomerHandler(customerRepo *repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{customerRepo: customerRepo}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
