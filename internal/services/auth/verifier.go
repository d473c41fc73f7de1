package auth

import (
	"context"
	"errors"
	"net/mail"

	"invoice-dashboard-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// minPasswordLen matches the shortest secret the login form accepts.
const minPasswordLen = 6

// UserStore looks up principals. *repository.UserRepository satisfies it.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Verifier checks submitted credentials against stored bcrypt hashes.
type Verifier struct {
	users UserStore
}

func NewVerifier(users UserStore) *Verifier {
	return &Verifier{users: users}
}

// Verify returns the matching principal, or (nil, nil) for any credential
// mismatch. Unknown email and wrong password are indistinguishable to the
// caller. Structurally invalid input never reaches the store. Store
// failures other than not-found are returned as-is.
func (v *Verifier) Verify(ctx context.Context, email, password string) (*models.User, error) {
	if !validShape(email, password) {
		return nil, nil
	}

	user, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

func validShape(email, password string) bool {
	if len(password) < minPasswordLen {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
