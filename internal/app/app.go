package app

import (
	"fmt"
	"time"

	"nbhd_backend/database"
	"nbhd_backend/internal/auth"
	"nbhd_backend/internal/config"
	"nbhd_backend/internal/handlers"
	"nbhd_backend/internal/logger"
	"nbhd_backend/internal/metrics"
	"nbhd_backend/internal/middleware"
	"nbhd_backend/internal/models"
	"nbhd_backend/internal/repositories"
	"nbhd_backend/internal/routes"
	"nbhd_backend/internal/services"
	"nbhd_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter assembles the middleware chain and the full route table over
// the given DB handle. Tests call this directly with an in-memory database.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))

	container := services.NewServiceContainer()
	appHandlers := handlers.NewAppHandlers(container, validator.New())
	routes.SetupRoutes(router, appHandlers)

	return router
}

// seedFirstAdmin creates the bootstrap admin account when no admin exists and
// credentials are configured.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository()
	exists, err := userRepo.AdminExists(db)
	if err != nil || exists {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     cfg.Admin.Username,
		PasswordHash: hash,
		DateJoined:   time.Now(),
		IsAdmin:      true,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logger.Info("seeded bootstrap admin", "username", cfg.Admin.Username)
	return nil
}

// Run boots the application: config, logging, metrics, database, schema,
// admin seed, HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	metrics.Register()

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	router := SetupRouter(db, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}
