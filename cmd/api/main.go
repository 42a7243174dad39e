// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lionfit/gym-management-backend/internal/api/handlers"
	"github.com/lionfit/gym-management-backend/internal/api/middleware"
	"github.com/lionfit/gym-management-backend/internal/config"
	"github.com/lionfit/gym-management-backend/internal/cron"
	"github.com/lionfit/gym-management-backend/internal/db"
	"github.com/lionfit/gym-management-backend/internal/repository"
	"github.com/lionfit/gym-management-backend/internal/seed"
	"github.com/lionfit/gym-management-backend/internal/service"
	"github.com/lionfit/gym-management-backend/internal/socket"
)

func main() {
	// ============================================
	// Load environment variables
	// ============================================
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// ============================================
	// Load configuration
	// ============================================
	cfg := config.Load()

	// ============================================
	// Set Gin mode
	// ============================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	log.Println("Running database migrations...")
	migrationsPath := "./internal/db/migrations"
	if err := db.RunMigrations(cfg.DatabasePath, migrationsPath); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Database migrations completed")

	// ============================================
	// Initialize SQLite
	// ============================================
	sqliteDB, err := db.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer sqliteDB.Close()

	// ============================================
	// Initialize Store & Repositories
	// ============================================
	store := repository.NewStore(sqliteDB.DB)
	repos := store.Repos()
	log.Println("[Store] Repositories initialized")

	// ============================================
	// Initialize WebSocket Hub
	// ============================================
	hub := socket.NewHub()
	go hub.Run()
	broadcaster := socket.NewBroadcaster(hub)

	// WebSocket handler with JWT secret for self-authentication
	wsHandler := socket.NewHandler(hub, cfg.JWTSecret)
	log.Println("[Socket] WebSocket hub initialized")

	// ============================================
	// Initialize All Services
	// ============================================
	services := service.NewServices(&service.ServiceDeps{
		Config:      cfg,
		Store:       store,
		Broadcaster: broadcaster,
	})
	log.Println("[Service] All services initialized")

	// ============================================
	// Seed Data (for development)
	// ============================================
	if cfg.Environment != "production" {
		seed.SeedData(repos, services.Payment)
	}

	// ============================================
	// Initialize Handlers
	// ============================================
	h := handlers.NewHandlers(services)

	// ============================================
	// Initialize Cron Scheduler
	// ============================================
	cronScheduler := cron.NewScheduler(services, repos.MemberRepo, broadcaster, func() int64 {
		return time.Now().UnixMilli()
	})
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// ============================================
	// Create Gin Router
	// ============================================
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"timestamp":  time.Now(),
			"database":   "connected",
			"websocket":  "active",
			"ws_clients": hub.GetConnectedClientsCount(),
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// ============================================
		// Public routes (no auth required)
		// ============================================
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// WebSocket route
		api.GET("/ws", wsHandler.HandleWebSocket)

		// ============================================
		// Protected routes (require auth middleware)
		// ============================================
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(services.Auth))
		{
			// Member routes
			members := protected.Group("/members")
			{
				members.GET("", h.Member.List)
				members.POST("", h.Member.Register)
				members.GET("/code/:code", h.Member.GetByCode)
				members.GET("/:id", h.Member.Get)
				members.PUT("/:id", h.Member.Update)
				members.DELETE("/:id", h.Member.Delete)
				members.GET("/:id/payments", h.Payment.ListForMember)
			}

			// Subscription plan routes
			subscriptions := protected.Group("/subscriptions")
			{
				subscriptions.GET("", h.Subscription.List)
				subscriptions.POST("", h.Subscription.Create)
				subscriptions.GET("/:id", h.Subscription.Get)
				subscriptions.PUT("/:id", h.Subscription.Update)
				subscriptions.DELETE("/:id", h.Subscription.Delete)
			}

			// Payment routes
			payments := protected.Group("/payments")
			{
				payments.GET("", h.Payment.List)
				payments.POST("", h.Payment.Record)
				payments.DELETE("/:id", h.Payment.Delete)
			}

			// Dashboard
			protected.GET("/stats", h.Stats.Get)
			protected.GET("/reports/summary", h.Report.Summary)
		}
	}

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
