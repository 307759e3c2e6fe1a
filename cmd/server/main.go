package main

import (
	"os"

	"github.com/acadegrade/result-service/internal/auth"
	"github.com/acadegrade/result-service/internal/cache"
	"github.com/acadegrade/result-service/internal/config"
	"github.com/acadegrade/result-service/internal/handlers"
	"github.com/acadegrade/result-service/internal/mailer"
	"github.com/acadegrade/result-service/internal/repositories/postgres"
	"github.com/acadegrade/result-service/internal/services"
	"github.com/acadegrade/result-service/internal/utils"
	"github.com/acadegrade/result-service/internal/validator"
	"github.com/acadegrade/result-service/pkg"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "development" {
		logger = utils.NewDevelopmentLogger()
	} else {
		logger = utils.NewDefaultLogger()
	}
	slogLogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := pkg.AutoMigrate(db); err != nil {
		logger.Error("Failed to migrate database schema", "error", err)
		os.Exit(1)
	}

	// Redis only backs identity-resolution lookups; the service degrades to
	// uncached lookups when it is unavailable.
	var cacheService cache.CacheService
	if redisClient, err := pkg.NewRedisClient(cfg); err != nil {
		logger.Warn("Redis unavailable, running without cache", "error", err)
		cacheService = cache.NewNoopCache()
	} else {
		cacheService = cache.NewRedisCache(redisClient, logger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	var mail mailer.Mailer
	if cfg.SendgridAPIKey != "" {
		mail = mailer.NewSendgridMailer(cfg.SendgridAPIKey, cfg.EmailFromName, cfg.EmailFromAddress)
	} else {
		logger.Warn("No SendGrid API key configured, contact emails are logged only")
		mail = mailer.NewConsoleMailer(logger)
	}

	verifier := auth.NewCasdoorVerifier(auth.CasdoorConfig{
		Endpoint:     cfg.CasdoorEndpoint,
		ClientID:     cfg.CasdoorClientID,
		ClientSecret: cfg.CasdoorClientSecret,
		Certificate:  cfg.CasdoorCertificate,
		Organization: cfg.CasdoorOrganization,
		Application:  cfg.CasdoorApplication,
	})

	repo := postgres.NewRepository(db)
	serviceManager := services.NewServiceManager(services.ManagerConfig{
		Repo:             repo,
		Logger:           slogLogger,
		Validator:        validator.New(),
		Cache:            cacheService,
		Publisher:        publisher,
		Mailer:           mail,
		ContactRecipient: cfg.ContactRecipient,
	})

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware(logger))

	handlerManager := handlers.NewHandlerManager(serviceManager, verifier, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting result service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
