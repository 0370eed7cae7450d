package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/uushop/shopping-list-go/internal/config"
	"github.com/uushop/shopping-list-go/internal/database"
	"github.com/uushop/shopping-list-go/internal/handlers"
	"github.com/uushop/shopping-list-go/internal/middleware"
	"github.com/uushop/shopping-list-go/internal/services"
	"github.com/uushop/shopping-list-go/internal/storage"
	"github.com/uushop/shopping-list-go/internal/types"
	"github.com/uushop/shopping-list-go/internal/utils"

	_ "github.com/uushop/shopping-list-go/docs/api" // Swagger docs
)

// @title Shopping List API
// @version 1.0.0
// @description Multi-tenant shopping list backend with uuCmd-style commands
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/uushop/shopping-list-go

// @license.name MIT

// @host localhost:3010
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := storage.NewGormStore(db)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: commandErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("shopping-list")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoint (no identity required)
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// Identity resolution for every command
	app.Use(middleware.ResolveIdentity(cfg))

	// Create handlers
	userHandler := &handlers.UserHandler{Store: store}
	listHandler := &handlers.ShoppingListHandler{Store: store}
	membershipHandler := &handlers.MembershipHandler{Store: store}
	itemHandler := &handlers.ListItemHandler{Store: store}

	// Profile allow-lists per command
	anyProfile := middleware.Authorize(
		middleware.ProfileAuthorities, middleware.ProfileUser, middleware.ProfileViewer)
	writeProfile := middleware.Authorize(
		middleware.ProfileAuthorities, middleware.ProfileUser)
	authoritiesOnly := middleware.Authorize(middleware.ProfileAuthorities)

	// User commands
	app.Post("/user/create", authoritiesOnly, userHandler.CreateUser)
	app.Get("/user/get", anyProfile, userHandler.GetUser)

	// Shopping list commands
	app.Post("/shoppingList/create", writeProfile, listHandler.CreateShoppingList)
	app.Get("/shoppingList/get", anyProfile, listHandler.GetShoppingList)
	app.Get("/shoppingList/listMy", anyProfile, listHandler.ListMyShoppingLists)
	app.Post("/shoppingList/update", writeProfile, listHandler.UpdateShoppingList)
	app.Post("/shoppingList/delete", writeProfile, listHandler.DeleteShoppingList)

	// Membership commands
	app.Post("/membership/addUser", writeProfile, membershipHandler.AddUserToList)
	app.Get("/membership/getListMembers", anyProfile, membershipHandler.GetListMembers)

	// List item commands
	app.Post("/listItem/create", writeProfile, itemHandler.CreateListItem)
	app.Post("/listItem/check", writeProfile, itemHandler.CheckListItem)
	app.Get("/listItem/list", anyProfile, itemHandler.ListListItems)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.CommandError(c, fiber.StatusNotFound,
			"system/commandDoesNotExist", "Command '"+c.OriginalURL()+"' does not exist.")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// commandErrorHandler renders errors that escape a handler as a uuAppErrorMap
// body, so every response keeps the same envelope
func commandErrorHandler(c *fiber.Ctx, err error) error {
	var statusErr *types.StatusError
	if errors.As(err, &statusErr) {
		return utils.CommandError(c, statusErr.Status, statusErr.Code, statusErr.Message)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := "system/internalError"
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			code = "system/commandDoesNotExist"
		case fiber.StatusBadRequest:
			code = "system/invalidRequest"
		}
		return utils.CommandError(c, fiberErr.Code, code, fiberErr.Message)
	}

	log.Printf("Unhandled error: %v", err)
	return utils.CommandError(c, fiber.StatusInternalServerError,
		"system/internalError", "Unexpected error.")
}
