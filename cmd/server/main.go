package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/socialsync/dashboard-api/configs"
	"github.com/socialsync/dashboard-api/internal/api/handlers"
	"github.com/socialsync/dashboard-api/internal/repository"
	"github.com/socialsync/dashboard-api/internal/seed"
	"github.com/socialsync/dashboard-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	var db *sql.DB
	var userRepo repository.UserRepository
	var platformRepo repository.PlatformRepository
	var postRepo repository.PostRepository
	var postPlatformRepo repository.PostPlatformRepository
	var analyticsRepo repository.AnalyticsRepository
	var mediaAssetRepo repository.MediaAssetRepository

	switch cfg.StorageDriver {
	case "postgres":
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("Database is unreachable: %v", err)
		}
		if err := repository.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}

		userRepo = repository.NewUserRepository(db)
		platformRepo = repository.NewPlatformRepository(db)
		postRepo = repository.NewPostRepository(db)
		postPlatformRepo = repository.NewPostPlatformRepository(db)
		analyticsRepo = repository.NewAnalyticsRepository(db)
		mediaAssetRepo = repository.NewMediaAssetRepository(db)

	case "memory":
		store := repository.NewMemoryStore()
		userRepo = repository.NewMemoryUserRepository(store)
		platformRepo = repository.NewMemoryPlatformRepository(store)
		postRepo = repository.NewMemoryPostRepository(store)
		postPlatformRepo = repository.NewMemoryPostPlatformRepository(store)
		analyticsRepo = repository.NewMemoryAnalyticsRepository(store)
		mediaAssetRepo = repository.NewMemoryMediaAssetRepository(store)

	default:
		log.Fatalf("Unknown storage driver: %s", cfg.StorageDriver)
	}

	if cfg.SeedDemo {
		if err := seed.Run(context.Background(), userRepo, platformRepo, postRepo, postPlatformRepo, analyticsRepo); err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
	}

	userService := service.NewUserService(userRepo)
	platformService := service.NewPlatformService(platformRepo)
	postService := service.NewPostService(db, postRepo, postPlatformRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	r2Service, err := service.NewR2Service(*cfg)
	if err != nil {
		log.Fatalf("Failed to set up object storage: %v", err)
	}
	mediaService := service.NewMediaService(mediaAssetRepo, r2Service)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	api := app.Group("/api")

	user := handlers.NewUserHandler(userService)
	api.Get("/user", user.GetUserInfo)

	platform := handlers.NewPlatformHandler(platformService)
	api.Get("/platforms", platform.ListPlatforms)
	api.Post("/platforms", platform.ConnectPlatform)
	api.Post("/platforms/disconnect", platform.DisconnectPlatform)

	post := handlers.NewPostHandler(postService, *cfg)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/scheduled", post.ListScheduledPosts)
	api.Post("/posts", post.CreatePost)
	api.Delete("/posts/:id", post.RemovePost)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analytics.GetOverview)

	media := handlers.NewMediaHandler(mediaService)
	api.Post("/media", media.UploadMedia)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if db != nil {
		closeDB(db)
	}
	log.Println("Server shutdown complete.")
}
