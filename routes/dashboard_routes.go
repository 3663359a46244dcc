package routes

import (
	"customer-app/config"
	"customer-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controllers.NewDashboardController(db)

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendString("Customer Management API is running!")
	})
	app.Get(config.MAIN_ROUTES+"/health", dashboardController.Health)
}
