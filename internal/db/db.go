package db

import (
	"invoice-dashboard-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Invoice{},
		&models.MutationAuditLog{},
	); err != nil {
		return nil, err
	}

	return database, nil
}
