package main

import (
	"log"
	"time"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/db"
	"invoice-dashboard-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	database, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	r := gin.Default()
	// CORS config
	origins := cfg.AllowedOrigins()
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, database, rdb, cfg)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
