package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"io.mapleapps.campquest/internal/campstore"
	"io.mapleapps.campquest/internal/db"
	firebaseutil "io.mapleapps.campquest/internal/firebase"
	"io.mapleapps.campquest/internal/geocode"
	"io.mapleapps.campquest/internal/handlers"
	"io.mapleapps.campquest/internal/imagegen"
	"io.mapleapps.campquest/internal/middleware"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	// Initialize Firebase
	firebaseApp, err := firebaseutil.InitFirebase()
	if err != nil {
		logger.Fatalf("Failed to initialize Firebase: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	firestoreClient, err := firebaseutil.GetFirestoreClient(ctx, firebaseApp)
	if err != nil {
		logger.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer firestoreClient.Close()

	// Initialize PostgreSQL
	postgresDB, err := db.InitPostgres()
	if err != nil {
		logger.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	defer postgresDB.Close()

	// Initialize Redis
	redisClient, err := db.InitRedis()
	if err != nil {
		logger.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	// Start the camps collection listener
	campStore := campstore.NewStore(firestoreClient, logger)
	go func() {
		if err := campStore.Listen(ctx); err != nil && ctx.Err() == nil {
			logger.Errorw("camps listener stopped", "error", err)
		}
	}()

	geocoder := geocode.NewClient(os.Getenv("GOOGLE_MAPS_API_KEY"), redisClient, logger, "")
	imageGenerator := imagegen.NewGenerator(os.Getenv("IMAGE_SERVICE_URL"), firestoreClient, logger)

	// Warm the geocode cache on every collection refresh so nearby searches
	// and map pins don't block on first-time Maps lookups.
	go func() {
		updates := campStore.Subscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case records := <-updates:
				addresses := make([]string, 0, len(records))
				for _, record := range records {
					addresses = append(addresses, geocode.FullAddress(record.Location))
				}
				geocoder.GeocodeBatch(ctx, addresses)
			}
		}
	}()

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// CORS for the web client
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(firebaseApp, postgresDB, redisClient, logger)
	campsHandler := handlers.NewCampsHandler(campStore, geocoder, postgresDB, logger)
	imagesHandler := handlers.NewImagesHandler(imageGenerator, campStore, logger)
	defer imagesHandler.Stop()

	authRequired := middleware.AuthMiddleware(firebaseApp, postgresDB, redisClient)

	// Define routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/create-account", authHandler.CreateAccount)
			auth.POST("/login", authHandler.Login)
			auth.POST("/delete-account", authRequired, authHandler.DeleteAccount)
			auth.POST("/update-settings", authRequired, authHandler.UpdateSettings)
		}

		camps := v1.Group("/camps")
		{
			camps.POST("/search", campsHandler.SearchCamps)
			camps.GET("/search", campsHandler.SearchCamps)
			camps.GET("/search-options", campsHandler.GetSearchOptions)
			camps.GET("/tags", campsHandler.GetUniqueTags)
			camps.POST("/map-pins", campsHandler.MapPins)
			camps.GET("/:name", campsHandler.GetCamp)
		}

		saved := v1.Group("/saved-camps")
		saved.Use(authRequired)
		{
			saved.POST("/save", campsHandler.SaveCamp)
			saved.POST("/unsave", campsHandler.UnsaveCamp)
			saved.GET("", campsHandler.ListSavedCamps)
		}

		admin := v1.Group("/admin")
		admin.Use(authRequired)
		{
			admin.POST("/generate-images", imagesHandler.GenerateImages)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + getEnvOrDefault("PORT", "9091"),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logger.Info("shutting down server")

	// Give a 5 second timeout for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server exited")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
