package routes

import (
	"customer-app/config"
	"customer-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAddressRoutes(app *fiber.App, db *gorm.DB) {
	addressController := controllers.NewAddressController(db)
	api := app.Group(config.MAIN_ROUTES)

	api.Get("/customers/:customerId/addresses", addressController.GetCustomerAddresses)
	api.Post("/customers/:customerId/addresses", addressController.CreateAddress)
	api.Put("/customers/:customerId/addresses/:addressId/primary", addressController.SetPrimaryAddress)
	api.Put("/addresses/:id", addressController.UpdateAddress)
	api.Delete("/addresses/:id", addressController.DeleteAddress)
}
