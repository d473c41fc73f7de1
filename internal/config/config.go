package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AuthConfig is the single composed authorization configuration: route
// classification rules plus the enabled credential strategies, assembled
// once at process start.
type AuthConfig struct {
	LoginPath         string
	HomePath          string
	ProtectedPrefixes []string
	// Providers lists the enabled credential verification strategies.
	// Only "credentials" is wired; external identity providers plug in here.
	Providers []string
}

type Config struct {
	AppEnv            string
	Addr              string
	DatabaseDSN       string
	RedisAddr         string
	SessionTTL        time.Duration
	CacheTTL          time.Duration
	AllowedOriginsRaw string
	Auth              AuthConfig
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:            getEnv("APP_ENV", "local"),
		Addr:              getEnv("APP_ADDR", ":8080"),
		DatabaseDSN:       os.Getenv("DATABASE_DSN"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		SessionTTL:        time.Duration(getEnvInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
		CacheTTL:          time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		AllowedOriginsRaw: getEnv("ALLOWED_ORIGINS", ""),
		Auth: AuthConfig{
			LoginPath:         "/login",
			HomePath:          "/dashboard",
			ProtectedPrefixes: []string{"/dashboard"},
			Providers:         []string{"credentials"},
		},
	}

	missing := []string{}
	if cfg.DatabaseDSN == "" {
		missing = append(missing, "DATABASE_DSN")
	}

	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

// AllowedOrigins splits the raw comma-separated origin list.
func (c Config) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.AllowedOriginsRaw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
