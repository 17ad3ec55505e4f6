package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	orderControllers "github.com/darkwizard3801/nexus-gateway/controllers/order"
	"github.com/darkwizard3801/nexus-gateway/marketplace"
	"github.com/darkwizard3801/nexus-gateway/middleware"
	"github.com/darkwizard3801/nexus-gateway/routes"
)

func main() {
	log.Println("✅ Starting storefront gateway...")

	// Load environment variables
	_ = godotenv.Load()

	upstreamURL := os.Getenv("UPSTREAM_API_URL")
	if upstreamURL == "" {
		log.Fatal("❌ UPSTREAM_API_URL is required")
	}
	mc := marketplace.NewClient(upstreamURL)

	// Gin setup
	r := gin.Default()
	r.Use(middleware.RequestID)

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Live order feed: polls the upstream and pushes status changes over
	// the websocket endpoint.
	feed := orderControllers.NewOrderFeed(mc, os.Getenv("UPSTREAM_SERVICE_TOKEN"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx, feedInterval())

	// Setup routes
	routes.SetupRoutes(r, mc, feed)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Gateway running on port %s (upstream %s)...", port, upstreamURL)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func feedInterval() time.Duration {
	if v := os.Getenv("ORDER_FEED_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("⚠️ Invalid ORDER_FEED_INTERVAL %q, using default", v)
	}
	return 15 * time.Second
}
