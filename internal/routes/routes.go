package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/config"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/middleware"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/auth"
	service "invoice-dashboard-backend/internal/services/invoices"
	"invoice-dashboard-backend/internal/session"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg config.Config) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	pageCache := cache.New(rdb, cfg.CacheTTL)
	sessions := session.NewManager(rdb, cfg.SessionTTL)

	invoiceService := service.NewService(invoiceRepo, pageCache, auditRepo)
	verifier := auth.NewVerifier(userRepo)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, invoiceRepo, customerRepo, pageCache)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	authHandler := handler.NewAuthHandler(verifier, sessions, cfg)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	gate := middleware.NewGate(sessions, cfg.Auth)

	// The gate sees every routed path: it sends anonymous requests on
	// protected routes to the login page and authenticated ones away from it.
	gated := r.Group("/", gate.Handler())

	gated.POST("/login", authHandler.Login)
	gated.POST("/logout", authHandler.Logout)

	dashboard := gated.Group("/dashboard")
	{
		dashboard.GET("/invoices", invoiceHandler.List)
		dashboard.GET("/invoices/new", invoiceHandler.NewForm)
		dashboard.GET("/invoices/:id/edit", invoiceHandler.Edit)
		dashboard.POST("/invoices", invoiceHandler.Create)
		dashboard.POST("/invoices/:id", invoiceHandler.Update)
		dashboard.DELETE("/invoices/:id", invoiceHandler.Delete)

		dashboard.GET("/customers", customerHandler.List)
	}
}
