package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"blogapi/docs"
	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/database/migration"
	handlers "blogapi/internal/http/handler"
	"blogapi/internal/http/middleware"
	"blogapi/internal/markdown"
	"blogapi/internal/otel"
	"blogapi/internal/repository/postgres"
	"blogapi/internal/service"
	"blogapi/internal/storage"
)

// @title Blog API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.Local

	ctx := context.Background()

	// Tracing first so later startup steps are already instrumented
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := migration.SeedAdmin(ctx, db, loc, cfg.Auth); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Repositories
	postRepo := postgres.NewPostPostgres(db)
	projectRepo := postgres.NewProjectPostgres(db)
	lifeRepo := postgres.NewLifePostgres(db)
	tagRepo := postgres.NewTagPostgres(db)
	userRepo := postgres.NewUserPostgres(db)
	settingRepo := postgres.NewSettingPostgres(db)

	// Services
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTExpires)
	renderer := markdown.NewRenderer()
	tagSvc := service.NewTagService(tagRepo)
	svcs := handlers.Services{
		Posts:    service.NewPostService(postRepo, tagSvc),
		Projects: service.NewProjectService(projectRepo),
		Life:     service.NewLifeService(lifeRepo),
		Tags:     tagSvc,
		Content:  service.NewContentService(postRepo, projectRepo, lifeRepo, objStore, tokens, renderer),
		Auth:     service.NewAuthService(userRepo, tokens, cfg.Auth.AdminUsername),
		Settings: service.NewSettingService(settingRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Upload.MaxBytes),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs, reg)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
