package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"billun/docs"
	"billun/internal/auth"
	"billun/internal/cache"
	"billun/internal/config"
	"billun/internal/db"
	"billun/internal/handler"
	"billun/internal/logger"
	"billun/internal/mailer"
	"billun/internal/repository"
	"billun/internal/router"
	"billun/internal/schema"
	"billun/internal/service"
)

var migrateOnly = flag.Bool("migrate-only", false, "Run DB migrations and exit")

// @title Billun Backend API
// @version 1.0
// @description Fleet equipment management API: users, materiels, anomalies and statistics.
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	log := logger.Default()

	gormDB, err := db.Open(cfg.Database.URL, cfg.Database.Debug)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.Database.Reset {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.WithError(err).Warn("failed to drop tables")
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if *migrateOnly {
		log.Info("migrations completed; exiting as requested")
		return
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	if cacheClient.Enabled() {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cacheClient.Ping(pingCtx); err != nil {
			log.WithError(err).Warn("redis unreachable, continuing without cache")
		}
		cancel()
	}

	schemas, err := schema.NewDefault()
	if err != nil {
		log.Fatalf("load request schemas: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	materielRepo := repository.NewMaterielRepository(gormDB)
	anomalieRepo := repository.NewAnomalieRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.Auth.SecretKey)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
	tracker := service.NewChangeTracker(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient, smtpMailer)
	materielService := service.NewMaterielService(materielRepo, userRepo, tracker)
	anomalieService := service.NewAnomalieService(anomalieRepo, materielRepo, tracker)
	statsService := service.NewStatsService(userRepo, materielRepo, anomalieRepo)
	contactService := service.NewContactService(smtpMailer)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		jwtService,
		handler.NewHealthHandler(),
		handler.NewAuthHandler(authService, schemas),
		handler.NewUserHandler(userService, authService, schemas),
		handler.NewMaterielHandler(materielService, schemas),
		handler.NewAnomalieHandler(anomalieService, schemas),
		handler.NewStatsHandler(statsService),
		handler.NewContactHandler(contactService, schemas),
	)

	swaggerURL := "http://localhost:" + cfg.Server.Port + "/swagger/index.html"
	if host := cfg.SwaggerHost; host != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			host = "http://" + host
		}
		swaggerURL = host + "/swagger/index.html"
	}
	log.Infof("Swagger documentation available at: %s", swaggerURL)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server gracefully stopped")
}
