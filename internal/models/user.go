package models

import "time"

// User accounts are created out of band (cmd/seed); the app only ever looks
// them up by email during login.
type User struct {
	ID    string `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string `gorm:"uniqueIndex"`
	// Password holds the bcrypt hash, never the plaintext secret.
	Password  string `json:"-"`
	CreatedAt time.Time
}
