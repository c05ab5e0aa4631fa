package app

import (
	"os"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/notification"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/request"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/connection"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BuildApp connects the infrastructure and registers every module's routes.
func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		envOr("DB_SSLMODE", "disable"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(envOr("REDIS_ADDR", "localhost:6379"), 5)
	if err != nil {
		return err
	}

	files, err := storage.NewDiskStore(envOr("UPLOAD_DIR", "uploads"))
	if err != nil {
		return err
	}

	notifier := notification.NewSMTPDispatcher(notification.SMTPConfig{
		Host:     envOr("SMTP_HOST", "smtp.gmail.com"),
		Port:     envOr("SMTP_PORT", "587"),
		From:     os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASS"),
	})

	cfg := request.Config{
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	}
	if cfg.AdminEmail == "" {
		zap.L().Warn("ADMIN_EMAIL not set, staff alerts will be skipped")
	}

	return registerModules(router, sqlDB, gormDB, rdb, notifier, files, cfg)
}
