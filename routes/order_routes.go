package routes

import (
	"customer-app/config"
	"customer-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB) {
	orderController := controllers.NewOrderController(db)
	api := app.Group(config.MAIN_ROUTES)

	api.Get("/orders", orderController.GetAllOrders)
	api.Post("/orders", orderController.CreateOrder)
	api.Get("/orders/:id", orderController.GetOrderByID)
	api.Put("/orders/:id", orderController.UpdateOrder)
	api.Delete("/orders/:id", orderController.DeleteOrder)
	api.Get("/customers/:customerId/orders", orderController.GetOrdersByCustomer)
}
