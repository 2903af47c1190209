package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hassanadil1/Panora-sub000/internal/config"
	"github.com/hassanadil1/Panora-sub000/internal/handler"
	"github.com/hassanadil1/Panora-sub000/internal/logger"
	"github.com/hassanadil1/Panora-sub000/internal/repository"
	"github.com/hassanadil1/Panora-sub000/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	log.Info("Panora chat recommendation service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer repo.Close()

	log.Info("Connected to PostgreSQL database")

	// Initialize services
	interpreter := service.NewQueryInterpreter()
	recommender := service.NewRecommender()
	renderer := service.NewRenderer(cfg.Chat.MaxDisplayListings, cfg.Chat.MaxDisplayPredictions)
	predictions := service.NewPredictionService(cfg.Predictions.CSVPath, log)
	chatService := service.NewChatService(repo, interpreter, recommender, renderer, predictions, log)

	log.Info("Services initialized", zap.String("predictions_csv", cfg.Predictions.CSVPath))

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService, log)
	listingsHandler := handler.NewListingsHandler(chatService, cfg.Listings.DefaultLimit, cfg.Listings.MaxLimit, log)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "panora-chat-service",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Chat endpoint used by the marketplace frontend
	router.POST("/api/chat", chatHandler.Chat)

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/listings", listingsHandler.Browse)
		apiV1.GET("/listings/:id", listingsHandler.GetListing)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting server", zap.String("addr", addr))

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
}
