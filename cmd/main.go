package main

import (
	"log"

	"courseadmin/internal/caching"
	"courseadmin/internal/handlers"
	"courseadmin/internal/repositories"
	"courseadmin/internal/services"
	"courseadmin/internal/storage"
	"courseadmin/pkg/config"
	"courseadmin/pkg/database"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Read()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	store, err := storage.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err))
	}

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Repositories
	categoryRepo := repositories.NewCategoryRepo(pool)
	subCategoryRepo := repositories.NewSubCategoryRepo(pool)

	// Services
	categoryThumbnails := services.NewThumbnailService(services.CategoryThumbnailBucket, store, logger)
	subCategoryThumbnails := services.NewThumbnailService(services.SubCategoryThumbnailBucket, store, logger)
	categorySvc := services.NewCategoryService(categoryRepo, categoryThumbnails, cacheSvc, logger)
	subCategorySvc := services.NewSubCategoryService(subCategoryRepo, categoryRepo, subCategoryThumbnails, cacheSvc, logger)

	// Handlers
	categoryHandlers := handlers.NewCategoryHandlers(categorySvc)
	subCategoryHandlers := handlers.NewSubCategoryHandlers(subCategorySvc, categorySvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	e := echo.New()
	e.Validator = handlers.NewFormValidator()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Category routes
	e.GET("/categories", categoryHandlers.ListCategories)
	e.GET("/categories/create", categoryHandlers.CreateForm)
	e.POST("/categories", categoryHandlers.StoreCategory)
	e.GET("/categories/:id/edit", categoryHandlers.EditForm)
	e.PUT("/categories/:id", categoryHandlers.UpdateCategory)
	e.DELETE("/categories/:id", categoryHandlers.DeleteCategory)
	e.PUT("/categories/:id/status", categoryHandlers.ToggleStatus)
	e.PUT("/categories/:id/featured", categoryHandlers.ToggleFeatured)

	// Subcategory routes
	e.GET("/subcategories", subCategoryHandlers.ListSubCategories)
	e.GET("/subcategories/create", subCategoryHandlers.CreateForm)
	e.POST("/subcategories", subCategoryHandlers.StoreSubCategory)
	e.GET("/subcategories/:id/edit", subCategoryHandlers.EditForm)
	e.PUT("/subcategories/:id", subCategoryHandlers.UpdateSubCategory)
	e.DELETE("/subcategories/:id", subCategoryHandlers.DeleteSubCategory)
	e.PUT("/subcategories/:id/status", subCategoryHandlers.ToggleStatus)
	e.PUT("/subcategories/:id/featured", subCategoryHandlers.ToggleFeatured)

	logger.Info("course taxonomy admin starting", zap.String("port", cfg.Port))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
