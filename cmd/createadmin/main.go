package main

import (
	"context"
	"errors"
	"flag"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"billun/internal/auth"
	"billun/internal/cache"
	"billun/internal/config"
	"billun/internal/db"
	apperrors "billun/internal/errors"
	"billun/internal/logger"
	"billun/internal/model"
	"billun/internal/optional"
	"billun/internal/repository"
	"billun/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	log := logger.Default()

	email := flag.String("email", cfg.Admin.Email, "Admin email (defaults to ADMIN_EMAIL)")
	password := flag.String("password", cfg.Admin.Password, "Admin password (defaults to ADMIN_PASSWORD)")
	nom := flag.String("nom", "Super", "Admin last name")
	prenom := flag.String("prenom", "Admin", "Admin first name")
	flag.Parse()

	gormDB, err := db.Open(cfg.Database.URL, cfg.Database.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	authService := service.NewAuthService(
		repository.NewUserRepository(gormDB),
		auth.NewJWTService(cfg.Auth.SecretKey),
		cache.New("", "", 0),
	)

	admin, created, err := createAdmin(context.Background(), authService, service.UserInput{
		Email:    email,
		Password: password,
		Nom:      optional.Some(*nom),
		Prenom:   optional.Some(*prenom),
	})
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	if !created {
		log.Infof("Admin user already exists: %s", *email)
		return
	}
	log.WithFields(logrus.Fields{
		"id":    admin.ID,
		"email": admin.Email,
		"role":  admin.Role,
	}).Info("Admin created successfully")
}

// createAdmin creates the administrator account unless the email is already taken.
func createAdmin(ctx context.Context, svc service.AuthService, in service.UserInput) (*model.User, bool, error) {
	admin, err := svc.CreateAdmin(ctx, in)
	if errors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return admin, true, nil
}
