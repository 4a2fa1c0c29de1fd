package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/invoice-actions/internal/api"
	"github.com/hypernova-labs/invoice-actions/internal/auth"
	"github.com/hypernova-labs/invoice-actions/internal/config"
	"github.com/hypernova-labs/invoice-actions/internal/database"
	"github.com/hypernova-labs/invoice-actions/internal/services"
	"github.com/hypernova-labs/invoice-actions/internal/workflows"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting invoice actions service...")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Conectar a la base de datos
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := db.Migrate(ctx)
		cancel()
		if err != nil {
			logger.Fatalf("Error migrating database: %v", err)
		}
		logger.Info("Database schema is up to date")
	}

	checks := map[string]api.HealthChecker{"database": db}

	// Redis es opcional: sin él las vistas no se cachean
	redis, err := database.ConnectRedis(cfg)
	if err != nil {
		logger.Warnf("Error connecting to Redis, view cache disabled: %v", err)
		redis = nil
	} else {
		defer redis.Close()
		checks["redis"] = redis
	}

	var publisher services.EventPublisher
	if inngestClient, err := workflows.NewInngestClient(cfg, logger); err != nil {
		logger.Warnf("Inngest not available, revalidation events disabled: %v", err)
	} else {
		publisher = inngestClient
	}

	// Inicializar servicios
	invoiceRepo := database.NewInvoiceRepository(db, logger)
	userRepo := database.NewUserRepository(db, logger)
	viewCache := services.NewViewCache(redis, publisher, cfg.Actions.ViewCacheTTL, logger)
	sessions := auth.NewSessionManager(cfg.JWT)

	apiHandler := api.NewAPI(
		services.NewInvoiceActions(invoiceRepo, viewCache, cfg.Actions, logger),
		services.NewAuthActions(auth.NewCredentialsProvider(userRepo, sessions, logger), logger),
		services.NewInvoiceListing(invoiceRepo, viewCache, cfg.Actions.ListingPath, logger),
		sessions,
		cfg.JWT.CookieName,
		cfg.IsProduction(),
		checks,
		logger,
	)

	router := api.NewRouter(apiHandler, api.RouterOptions{
		ListingPath:    cfg.Actions.ListingPath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("Server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	db.LogStats(logger)
	logger.Info("Server exited")
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
