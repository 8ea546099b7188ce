package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"scratch-quiz/internal/config"
	"scratch-quiz/internal/export"
	"scratch-quiz/internal/handler"
	"scratch-quiz/internal/logger"
	"scratch-quiz/internal/middleware"
	"scratch-quiz/internal/repository"
	"scratch-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		// Log request details
		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Load and validate the question bank. A malformed bank is a
	// configuration fault; fail fast instead of mis-scoring later.
	bank, err := repository.NewQuestionBankFromFile(cfg.Quiz.BankPath)
	if err != nil {
		appLogger.Fatal("Failed to load question bank",
			zap.String("path", cfg.Quiz.BankPath),
			zap.Error(err))
	}
	appLogger.Info("Question bank loaded",
		zap.String("path", cfg.Quiz.BankPath),
		zap.Int("questions", bank.Size()))

	// Initialize services
	sessionService := service.NewSessionService(bank)
	exportService := service.NewExportService()
	reportWriter := export.NewXLSXWriter(cfg.Export)

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionService, exportService, reportWriter)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Get("/session", sessionHandler.GetSession)
	apiGroup.Post("/session", sessionHandler.RestartSession)
	apiGroup.Post("/session/answers", sessionHandler.SelectOption)
	apiGroup.Post("/session/submit", sessionHandler.Submit)
	apiGroup.Get("/session/export", sessionHandler.Export)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
