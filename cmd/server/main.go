package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "grandstay-backend/internal/api/http"
	"grandstay-backend/internal/config"
	"grandstay-backend/internal/gateway"
	"grandstay-backend/internal/logger"
	"grandstay-backend/internal/repository/postgres"
	"grandstay-backend/internal/security"
	"grandstay-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GrandStay Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Payment Gateway
	stripeGateway := gateway.NewStripeGateway(
		cfg.Stripe.APIKey,
		cfg.Stripe.WebhookSecret,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
	)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.StaffRepository, tokenManager)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.RoomAssignmentRepository,
		store.RoomRepository,
		store.ServiceRepository,
		store.ServiceAssignmentRepository,
		store.BillRepository,
		emailSvc,
	)
	billingSvc := service.NewBillingService(
		store.BillRepository,
		store.PaymentRepository,
		store.ReservationRepository,
		store.RoomAssignmentRepository,
		store.ServiceAssignmentRepository,
		stripeGateway,
		emailSvc,
	)
	roomSvc := service.NewRoomService(store.RoomRepository)
	catalogSvc := service.NewCatalogService(store.ServiceRepository)
	reportSvc := service.NewReportService(store.ReportRepository)

	// Set up HTTP server
	handlers := httpapi.NewHandlers(authSvc, reservationSvc, billingSvc, roomSvc, catalogSvc, reportSvc)
	router := httpapi.NewRouter(handlers, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
