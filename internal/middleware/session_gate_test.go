package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		LoginPath:         "/login",
		HomePath:          "/dashboard",
		ProtectedPrefixes: []string{"/dashboard"},
		Providers:         []string{"credentials"},
	}
}

func setupGate(t *testing.T) (*Gate, *session.Manager) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sessions := session.NewManager(client, time.Hour)
	return NewGate(sessions, testAuthConfig()), sessions
}

func TestDecideTable(t *testing.T) {
	gate, _ := setupGate(t)

	tests := []struct {
		name     string
		loggedIn bool
		path     string
		want     Decision
	}{
		{name: "logged in, protected", loggedIn: true, path: "/dashboard/invoices", want: Allow},
		{name: "logged out, protected", loggedIn: false, path: "/dashboard/invoices", want: RedirectToLogin},
		{name: "logged out, protected root", loggedIn: false, path: "/dashboard", want: RedirectToLogin},
		{name: "logged in, login page", loggedIn: true, path: "/login", want: RedirectToHome},
		{name: "logged in, root", loggedIn: true, path: "/", want: RedirectToHome},
		{name: "logged out, login page", loggedIn: false, path: "/login", want: Allow},
		{name: "logged out, root", loggedIn: false, path: "/", want: Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Decide(tt.loggedIn, tt.path))
		})
	}
}

func gateRouter(gate *Gate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gate.Handler())
	r.GET("/dashboard/invoices", func(c *gin.Context) {
		c.String(http.StatusOK, "invoices")
	})
	r.GET("/login", func(c *gin.Context) {
		c.String(http.StatusOK, "login")
	})
	return r
}

func TestHandlerRedirectsAnonymousFromProtectedRoute(t *testing.T) {
	gate, _ := setupGate(t)
	r := gateRouter(gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestHandlerAllowsAuthenticatedSession(t *testing.T) {
	gate, sessions := setupGate(t)
	r := gateRouter(gate)

	token, err := sessions.Establish(context.Background(), &models.User{ID: "u1", Email: "admin@example.com"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "invoices", w.Body.String())
}

func TestHandlerKeepsAuthenticatedUserOffLoginPage(t *testing.T) {
	gate, sessions := setupGate(t)
	r := gateRouter(gate)

	token, err := sessions.Establish(context.Background(), &models.User{ID: "u1", Email: "admin@example.com"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestHandlerAllowsAnonymousOnLoginPage(t *testing.T) {
	gate, _ := setupGate(t)
	r := gateRouter(gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaleCookieReadsAsLoggedOut(t *testing.T) {
	gate, _ := setupGate(t)
	r := gateRouter(gate)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "revoked-token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
