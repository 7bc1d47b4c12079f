package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"ecolearn/internal/config"
	"ecolearn/internal/database"
	"ecolearn/internal/handlers"
	"ecolearn/internal/middleware"
	"ecolearn/internal/repositories"
	"ecolearn/internal/services"
	"ecolearn/pkg/rabbitmq"
)

// NewApp builds the HTTP application. A nil db means the store is not
// configured and every /api route answers 500. publisher may be nil.
func NewApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher) *fiber.App {
	app := fiber.New()

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New()) // Request logger
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		store := "configured"
		if db == nil {
			store = "missing"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"store":  store,
		})
	})

	api := app.Group("/api")
	if db == nil {
		api.Use(middleware.StoreUnavailable())
		return app
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	postRepo := repositories.NewGORMPostRepository(db)
	calendarRepo := repositories.NewGORMCalendarRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, publisher).
		WithTokenDuration(cfg.TokenTTL).
		WithDefaultSchool(cfg.DefaultSchool)
	profileService := services.NewProfileService(userRepo)
	postService := services.NewPostService(postRepo, publisher)
	calendarService := services.NewCalendarService(calendarRepo, publisher)

	// --- API Routes ---
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewProfileHandler(profileService).RegisterRoutes(api)
	handlers.NewPostHandler(postService).RegisterRoutes(api, middleware.AuthRequired(authService))
	handlers.NewCalendarHandler(calendarService).RegisterRoutes(api)

	return app
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Database ---
	var db *gorm.DB
	if cfg.StoreConfigured() {
		db, err = database.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
	} else {
		log.Println("DATABASE_DSN or DATABASE_NAME not set; API routes will report a configuration error")
	}

	// --- Initialize RabbitMQ Client ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
		publisher = mqClient

		log.Println("Starting RabbitMQ consumer for domain events...")
		if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set; domain events are disabled")
	}

	app := NewApp(cfg, db, publisher)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
