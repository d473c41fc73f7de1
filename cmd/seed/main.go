package main

import (
	"log"
	"os"
	"time"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/db"
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// Seeds the admin user and a starter customer set. User accounts have no
// signup flow; this is the out-of-band creation path.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	database, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("SEED_ADMIN_PASSWORD is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash error: %v", err)
	}

	admin := models.User{
		ID:       uuid.NewString(),
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hash),
	}
	if err := database.Clauses(clause.OnConflict{DoNothing: true}).Create(&admin).Error; err != nil {
		log.Fatalf("seed user error: %v", err)
	}

	customers := []models.Customer{
		{ID: uuid.NewString(), Name: "Acme Corp", Email: "billing@acme.example"},
		{ID: uuid.NewString(), Name: "Globex", Email: "accounts@globex.example"},
		{ID: uuid.NewString(), Name: "Initech", Email: "finance@initech.example"},
	}
	for _, customer := range customers {
		if err := database.Clauses(clause.OnConflict{DoNothing: true}).Create(&customer).Error; err != nil {
			log.Fatalf("seed customer error: %v", err)
		}
	}

	invoice := models.Invoice{
		ID:          uuid.NewString(),
		CustomerID:  customers[0].ID,
		AmountCents: 4999,
		Status:      models.InvoiceStatusPending,
		Date:        time.Now().Format("2006-01-02"),
	}
	if err := database.Clauses(clause.OnConflict{DoNothing: true}).Create(&invoice).Error; err != nil {
		log.Fatalf("seed invoice error: %v", err)
	}

	log.Println("seed completed: 1 user,", len(customers), "customers, 1 invoice")
}
