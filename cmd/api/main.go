package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"resumeats/checker/internal/config"
	"resumeats/checker/internal/handlers"
	"resumeats/checker/internal/logger"
	"resumeats/checker/internal/services"
	"resumeats/checker/internal/vocab"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.JSON)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Vocabulary is loaded once and shared read-only by every request.
	vocabulary, err := vocab.Load(cfg.Vocab.Path)
	if err != nil {
		zlog.Fatal("failed to load skill vocabulary", zap.Error(err))
	}
	zlog.Info("vocabulary loaded",
		zap.Int("hard_skills", len(vocabulary.HardSkills)),
		zap.Int("soft_skills", len(vocabulary.SoftSkills)),
	)

	// Initialize services
	parserService := services.NewParserService()
	analyzerService := services.NewAnalyzerService(vocabulary, zlog)
	jobMatcherService := services.NewJobMatcherService(vocabulary, analyzerService, zlog)
	zlog.Info("services initialized")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		parserService,
		analyzerService,
		cfg.Storage.MaxFileSize,
		zlog,
	)
	compareHandler := handlers.NewCompareHandler(
		analyzeHandler,
		parserService,
		analyzerService,
		jobMatcherService,
		zlog,
	)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Checker API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/compare", compareHandler.HandleCompare)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend
	app.Static("/", cfg.Storage.StaticDir)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
