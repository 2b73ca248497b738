package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/madera/internal/config"
	"github.com/example/madera/internal/handlers"
	"github.com/example/madera/internal/middleware"
	"github.com/example/madera/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	referralService := services.NewReferralService(db)
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	mailService := services.NewMailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.PartnerEmail)

	authHandler := handlers.NewAuthHandler(db, cfg, referralService)
	orderHandler := handlers.NewOrderHandler(db, referralService, telegramService)
	profileHandler := handlers.NewProfileHandler(db)
	partnerHandler := handlers.NewPartnerHandler(db, mailService)
	measureHandler := handlers.NewMeasureHandler(db, telegramService)

	api := app.Group("/api")

	api.Get("/health", handlers.Health)

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Orders are placed without an account; listing and status changes
	// require a valid token.
	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders/my", middleware.AuthMiddleware(cfg), orderHandler.ListMyOrders)
	api.Patch("/orders/:id/status", middleware.AuthMiddleware(cfg), orderHandler.UpdateStatus)

	partner := api.Group("/partner")
	partner.Get("/stats", middleware.AuthMiddleware(cfg), orderHandler.PartnerStats)
	partner.Post("/submit", partnerHandler.SubmitRequest)
	partner.Get("/requests", partnerHandler.ListRequests)

	api.Get("/profile/:userId", profileHandler.GetProfile)
	api.Post("/profile/:userId", profileHandler.UpsertProfile)

	api.Post("/measure", measureHandler.Submit)
}
