package middleware

import (
	"net/http"
	"strings"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// ContextSession is the gin context key holding the resolved session.
const ContextSession = "session"

// Decision is the outcome of the per-request authorization check.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToHome
)

// Gate evaluates the session/route decision table on every request.
// It never caches a decision and never errors: no session means logged out.
type Gate struct {
	sessions *session.Manager
	cfg      config.AuthConfig
}

func NewGate(sessions *session.Manager, cfg config.AuthConfig) *Gate {
	return &Gate{sessions: sessions, cfg: cfg}
}

// Protected classifies a path statically: protected paths live under the
// configured prefixes, everything else (the login page included) is not.
func (g *Gate) Protected(path string) bool {
	for _, prefix := range g.cfg.ProtectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Decide applies the decision table:
//
//	logged in  + protected   → allow
//	logged out + protected   → redirect to login
//	logged in  + unprotected → redirect home (no login screen for a live session)
//	logged out + unprotected → allow
func (g *Gate) Decide(loggedIn bool, path string) Decision {
	if g.Protected(path) {
		if loggedIn {
			return Allow
		}
		return RedirectToLogin
	}
	if loggedIn {
		return RedirectToHome
	}
	return Allow
}

// Handler adapts the gate to gin. The resolved session, if any, is stored
// on the context for downstream handlers.
func (g *Gate) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if cookie, err := c.Cookie(session.CookieName); err == nil {
			token = cookie
		}

		sess, loggedIn := g.sessions.Current(c.Request.Context(), token)
		if loggedIn {
			c.Set(ContextSession, sess)
		}

		switch g.Decide(loggedIn, c.Request.URL.Path) {
		case RedirectToLogin:
			c.Redirect(http.StatusSeeOther, g.cfg.LoginPath)
			c.Abort()
		case RedirectToHome:
			c.Redirect(http.StatusSeeOther, g.cfg.HomePath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
