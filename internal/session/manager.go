package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie carrying the opaque session token.
const CookieName = "session"

// Session is the server-side state established after credential verification.
type Session struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager keeps sessions in Redis under an opaque random token, so a token
// can be revoked server-side at any time.
type Manager struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewManager(rdb *redis.Client, ttl time.Duration) *Manager {
	return &Manager{rdb: rdb, ttl: ttl}
}

// Establish creates a session for a verified user and returns its token.
func (m *Manager) Establish(ctx context.Context, user *models.User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	sess := Session{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: time.Now(),
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	if err := m.rdb.Set(ctx, key(token), payload, m.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Current resolves a token to its session. Any failure (missing token,
// expired key, corrupt payload, Redis down) reads as logged out.
func (m *Manager) Current(ctx context.Context, token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	payload, err := m.rdb.Get(ctx, key(token)).Bytes()
	if err != nil {
		return nil, false
	}
	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, false
	}
	return &sess, true
}

// Destroy revokes a token.
func (m *Manager) Destroy(ctx context.Context, token string) {
	if token == "" {
		return
	}
	m.rdb.Del(ctx, key(token))
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func key(token string) string {
	return "session:" + token
}
