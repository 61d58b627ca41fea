package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nikuznetsov/geolingo/internal/config"
	"github.com/nikuznetsov/geolingo/internal/handler"
	"github.com/nikuznetsov/geolingo/internal/service"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Load the world dataset; the service must not start on a bad set
	set, err := service.LoadDataset(config.AppConfig.DataPath)
	if err != nil {
		log.Fatal("Failed to load dataset:", err)
	}
	index := service.BuildIndex(set)
	log.Printf("Loaded %d countries from %s", set.Len(), config.AppConfig.DataPath)

	// Initialize services
	coverageSearch := service.NewCoverageSearch(set, index)

	// Initialize handlers
	coverageHandler := handler.NewCoverageHandler(coverageSearch, index, config.AppConfig.SuggestLimit)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handler.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Setup routes
	setupRoutes(app, coverageHandler)

	// Graceful shutdown channel
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	addr := config.AppConfig.ServerHost + ":" + config.AppConfig.ServerPort

	// Start server in a goroutine
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal("Server error:", err)
		}
	}()

	log.Printf("Server started on %s", addr)

	// Wait for interrupt signal
	<-shutdownChan
	log.Println("Shutting down server...")

	// Cleanup and shutdown
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server shutdown error:", err)
	}
}

func setupRoutes(app *fiber.App, coverageHandler *handler.CoverageHandler) {
	api := app.Group("/api/v1")

	api.Get("/languages", coverageHandler.GetSuggestions)
	api.Get("/countries", coverageHandler.GetCountries)
	api.Get("/countries/:id", coverageHandler.GetCountry)
	api.Get("/coverage", coverageHandler.GetCoverage)
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
