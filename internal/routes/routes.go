// Package routes defines the API routing configuration. It wires
// repositories, services and handlers and groups routes by authentication
// requirement.
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moneybox/internal/handlers"
	"moneybox/internal/middleware"
	"moneybox/internal/repositories"
	"moneybox/internal/services/auth"
	"moneybox/internal/services/money"
	"moneybox/internal/services/notification"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	accountRepo := repositories.NewAccountRepository(db)
	userRepo := repositories.NewUserRepository(db)

	notifier := notification.NewService()
	moneyService := money.NewService(accountRepo, repositories.CacheService, notifier)
	authService := auth.NewService(userRepo, accountRepo)

	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(moneyService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	account := api.Group("/account", middleware.Auth)
	account.Get("/", accountHandler.GetAccount)
	account.Post("/withdraw", accountHandler.Withdraw)
	account.Post("/transfer", accountHandler.Transfer)
}
