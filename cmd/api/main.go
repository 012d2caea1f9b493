package main

import (
	"log"
	"net/http"
	"os"
	"quotagate/internal/api/handlers"
	"quotagate/internal/config"
	"quotagate/internal/database"
	"quotagate/internal/metrics"
	"quotagate/internal/middleware"
	"quotagate/internal/repository"
	"quotagate/internal/services"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Initialize database connection (pooled, long-lived handle)
	db, err := database.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize repositories
	credentialRepo := repository.NewCredentialRepository(db)
	usageRepo := repository.NewUsageRepository(db)

	// Initialize services
	quotaConfig := config.NewQuotaConfig()
	cacheConfig := config.NewCacheConfig()

	var cache services.CacheService
	if cacheConfig.Enabled() {
		redisCache, err := services.NewRedisCacheService(cacheConfig)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		cache = redisCache
	}

	credentialService := services.NewCredentialService(credentialRepo, cache, quotaConfig)
	admissionService := services.NewAdmissionService(credentialService, usageRepo)
	usageLogService := services.NewUsageLogService(credentialService, usageRepo, quotaConfig)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(credentialService)
	admissionHandler := handlers.NewAdmissionHandler(admissionService)
	usageLogHandler := handlers.NewUsageLogHandler(usageLogService)

	// Initialize metrics
	metrics.Register()

	// Initialize router
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)

	// Public routes
	router.HandleFunc("/", handlers.Home).Methods("GET")
	router.HandleFunc("/register", registerHandler.Register).Methods("POST")
	router.HandleFunc("/check-limit", admissionHandler.CheckLimit).Methods("GET")
	router.HandleFunc("/logs", usageLogHandler.GetLogs).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API routes gated by the admission engine
	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.Use(middleware.AdmissionMiddleware(admissionService))
	apiRouter.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	}).Methods("GET")

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-API-Key",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	// Create server with timeouts
	srv := &http.Server{
		Handler:      corsMiddleware.Handler(router),
		Addr:         ":" + getPort(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	// Start server
	log.Printf("Server starting on port %s...", getPort())
	log.Fatal(srv.ListenAndServe())
}

func getPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}
