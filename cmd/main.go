package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "movie-catalog/docs"
	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/routes"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Movie Catalog API
// @version 1.0
// @description Public movie catalog with threaded reviews and ratings, plus the back-office API used by staff to curate movies, people, stills and taxonomies
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.basic BasicAuth

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}
	if cfg.Admin.Password == "" {
		log.Fatal("ADMIN_PASSWORD must be set before the admin API can be served")
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	cache, err := services.NewCatalogCache(context.Background(), cfg.Redis, log)
	if err != nil {
		log.WithError(err).Warn("Catalog cache unavailable, serving from database only")
		cache = services.NopCache{}
	}
	if closer, ok := cache.(interface{ Close() error }); ok {
		defer func() { _ = closer.Close() }()
	}

	minioService, err := services.NewMinIOService(&cfg.MinIO, log)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	validate := utils.NewValidator()

	movieRepo := repository.NewMovieRepository(db)
	actorRepo := repository.NewActorRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	shotRepo := repository.NewShotRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	starRepo := repository.NewRatingStarRepository(db)

	catalogService := services.NewCatalogService(movieRepo, reviewRepo, ratingRepo, starRepo, cache, validate, log)
	movieService := services.NewMovieService(movieRepo, actorRepo, genreRepo, categoryRepo, minioService, cache, log)
	actorService := services.NewActorService(actorRepo, minioService, cache, log)
	shotService := services.NewShotService(shotRepo, movieRepo, minioService, cache, log)
	taxonomyService := services.NewTaxonomyService(categoryRepo, genreRepo, cache, log)
	reviewService := services.NewReviewService(reviewRepo, cache, log)
	ratingService := services.NewRatingService(starRepo, ratingRepo, movieRepo, cache, log)

	h := routes.Handlers{
		Catalog:  handlers.NewCatalogHandler(catalogService, validate, log),
		Movies:   handlers.NewAdminMovieHandler(movieService, validate, log),
		Actors:   handlers.NewAdminActorHandler(actorService, validate, log),
		Shots:    handlers.NewAdminShotHandler(shotService, validate, log),
		Taxonomy: handlers.NewAdminTaxonomyHandler(taxonomyService, validate, log),
		Reviews:  handlers.NewAdminReviewHandler(reviewService, log),
		Ratings:  handlers.NewAdminRatingHandler(ratingService, validate, log),
		Upload:   handlers.NewUploadHandler(minioService, log),
	}

	app := fiber.New(fiber.Config{
		AppName:               "Movie Catalog API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	adminAuth := basicauth.New(basicauth.Config{
		Users: map[string]string{cfg.Admin.Username: cfg.Admin.Password},
		Realm: "Movie Catalog Admin",
	})
	submitLimiter := middleware.NewSubmitLimiter(cfg.Limits.SubmissionsPerMinute, cfg.Limits.SubmissionBurst, log)

	// Setup API routes
	routes.Setup(app, h, adminAuth, submitLimiter)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Movie Catalog API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "movie-catalog",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
