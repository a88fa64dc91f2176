package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/naxo-910/elsabor-api/catalog"
	"github.com/naxo-910/elsabor-api/checkout"
	"github.com/naxo-910/elsabor-api/routes"
	"github.com/naxo-910/elsabor-api/session"
	"github.com/naxo-910/elsabor-api/stock"
	"github.com/naxo-910/elsabor-api/storage"
)

func main() {
	log.Println("✅ Starting El Sabor storefront...")

	// Load environment variables
	_ = godotenv.Load()

	// Durable client storage (carts, session, last order)
	storePath := os.Getenv("STORE_PATH")
	if storePath == "" {
		storePath = "elsabor.db"
	}
	kv, err := storage.Open(storePath)
	if err != nil {
		log.Fatalf("❌ Failed to open storage at %s: %v", storePath, err)
	}

	// Core components
	cat := catalog.New(catalog.Seed())
	reconciler := stock.New(cat)
	orchestrator := checkout.New(cat, reconciler, kv, nil)
	sessions := session.New(session.Seeded(), kv)

	// Restore any persisted session from a previous run
	if user, ok := sessions.Restore(); ok {
		log.Printf("✅ Restored session for %s", user.Username)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:  cat,
		Storage:  kv,
		Stock:    reconciler,
		Checkout: orchestrator,
		Sessions: sessions,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
