package controllers

import (
	"customer-app/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// Health reports liveness together with row counts from the store.
func (c *DashboardController) Health(ctx *fiber.Ctx) error {
	var customerCount, orderCount int64

	if err := c.DB.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "Unhealthy",
			"error":  "Database connection failed: " + err.Error(),
		})
	}
	if err := c.DB.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "Unhealthy",
			"error":  "Database connection failed: " + err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "Healthy",
		"database":  "Connected",
		"customers": customerCount,
		"orders":    orderCount,
		"timestamp": time.Now().UTC(),
	})
}
