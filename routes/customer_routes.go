package routes

import (
	"customer-app/config"
	"customer-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCustomerRoutes(app *fiber.App, db *gorm.DB) {
	customerController := controllers.NewCustomerController(db)
	api := app.Group(config.MAIN_ROUTES + "/customers")

	// Literal sub-paths must be registered before "/:id".
	api.Get("/", customerController.GetAllCustomers)
	api.Post("/", customerController.CreateCustomer)
	api.Get("/inactive", customerController.GetInactiveCustomers)
	api.Get("/search", customerController.SearchCustomers)
	api.Get("/stats", customerController.GetCustomerStats)
	api.Get("/filter/:customerType", customerController.FilterCustomersByType)
	api.Get("/export", customerController.ExportCustomers)
	api.Post("/upload-excel", customerController.ImportCustomersFromExcel)
	api.Get("/:id", customerController.GetCustomerByID)
	api.Put("/:id", customerController.UpdateCustomer)
	api.Patch("/:id", customerController.PatchCustomer)
	api.Delete("/:id", customerController.DeleteCustomer)
}
