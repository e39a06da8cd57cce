package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	_ "villasol/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"villasol/internal/auth"
	"villasol/internal/cache"
	"villasol/internal/config"
	"villasol/internal/db"
	"villasol/internal/handler"
	"villasol/internal/media"
	"villasol/internal/model"
	"villasol/internal/repository"
	"villasol/internal/router"
	"villasol/internal/scheduler"
	"villasol/internal/service"
)

// @title Villa Sol Content API
// @version 1.0
// @description Content management API for the Villa Sol resort site: slides, menu, packages, promotions, and site settings with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.SetupJoinTable(&model.Promotion{}, "Packages", &model.PromotionPackage{}); err != nil {
		log.Fatalf("join table setup: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Promotion{},
		&model.Package{},
		&model.PromotionPackage{},
		&model.Slide{},
		&model.MenuItem{},
		&model.SiteSetting{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	mediaStore := media.Disabled()
	if cfg.CloudinaryURL != "" {
		cloudinaryStore, err := media.NewCloudinaryStore(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("media store init: %v", err)
		}
		mediaStore = cloudinaryStore
	} else {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	promotionRepo := repository.NewPromotionRepository(gormDB)
	packageRepo := repository.NewPackageRepository(gormDB)
	slideRepo := repository.NewSlideRepository(gormDB)
	menuRepo := repository.NewMenuItemRepository(gormDB)
	settingRepo := repository.NewSiteSettingRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	slideService := service.NewSlideService(slideRepo, mediaStore, cfg.MediaFolder, logger)
	menuService := service.NewMenuService(menuRepo, cacheClient, mediaStore, cfg.MediaFolder, logger)
	packageService := service.NewPackageService(packageRepo)
	promotionService := service.NewPromotionService(promotionRepo, packageRepo)
	settingService := service.NewSettingService(settingRepo, cacheClient, mediaStore, cfg.MediaFolder, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.CookieDomain)
	slideHandler := handler.NewSlideHandler(slideService)
	menuHandler := handler.NewMenuHandler(menuService)
	packageHandler := handler.NewPackageHandler(packageService)
	promotionHandler := handler.NewPromotionHandler(promotionService)
	settingHandler := handler.NewSettingHandler(settingService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		slideHandler,
		menuHandler,
		packageHandler,
		promotionHandler,
		settingHandler,
	)

	// Start the promotion scheduler for the lifetime of the process.
	promoScheduler := scheduler.New(promotionRepo, cfg.SchedulerInterval, logger)
	promoScheduler.Start()
	defer promoScheduler.Stop()

	// Log swagger full path
	swaggerURL := "http://localhost:5000/swagger/index.html"
	if cfg.SwaggerHost != "" {
		if strings.HasPrefix(cfg.SwaggerHost, "http://") || strings.HasPrefix(cfg.SwaggerHost, "https://") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
