package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/services/auth"
	"invoice-dashboard-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	verifier *auth.Verifier
	sessions *session.Manager
	cfg      config.Config
}

func NewAuthHandler(verifier *auth.Verifier, sessions *session.Manager, cfg config.Config) *AuthHandler {
	return &AuthHandler{verifier: verifier, sessions: sessions, cfg: cfg}
}

// Login verifies the submitted credentials and establishes a session.
// Every credential failure collapses to the same generic message.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.verifier.Verify(ctx, email, password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.sessions.Establish(ctx, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetCookie(session.CookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, h.cfg.Auth.HomePath)
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Destroy(c.Request.Context(), token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, h.cfg.Auth.LoginPath)
}
