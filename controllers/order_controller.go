package controllers

import (
	"customer-app/config"
	"customer-app/services"
	"errors"
	"fmt"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB      *gorm.DB
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, service: services.NewOrderService(db)}
}

func (c *OrderController) GetAllOrders(ctx *fiber.Ctx) error {
	orders, err := c.service.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(orders)
}

func (c *OrderController) GetOrderByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	order, err := c.service.GetByID(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if order == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(order)
}

func (c *OrderController) GetOrdersByCustomer(ctx *fiber.Ctx) error {
	customerID, err := ctx.ParamsInt("customerId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	orders, err := c.service.GetByCustomerID(uint(customerID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(orders)
}

func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var input services.CreateOrderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := c.service.Create(&input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateOrderNumber) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Order number already exists",
				"message": fmt.Sprintf("An order with number '%s' already exists.", input.OrderNumber),
				"field":   "orderNumber",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Location", fmt.Sprintf("%s/orders/%d", config.MAIN_ROUTES, order.OrderID))
	return ctx.Status(fiber.StatusCreated).JSON(order)
}

func (c *OrderController) UpdateOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.CreateOrderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	order, err := c.service.Update(uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		case errors.Is(err, services.ErrDuplicateOrderNumber):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Order number already exists",
				"message": fmt.Sprintf("An order with number '%s' already exists.", input.OrderNumber),
				"field":   "orderNumber",
			})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(order)
}

func (c *OrderController) DeleteOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	ok, err := c.service.Delete(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Order deleted"})
}
