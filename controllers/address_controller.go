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

type AddressController struct {
	DB      *gorm.DB
	service *services.AddressService
}

func NewAddressController(db *gorm.DB) *AddressController {
	return &AddressController{DB: db, service: services.NewAddressService(db)}
}

func (c *AddressController) GetCustomerAddresses(ctx *fiber.Ctx) error {
	customerID, err := ctx.ParamsInt("customerId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	addresses, err := c.service.GetCustomerAddresses(uint(customerID))
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(addresses)
}

func (c *AddressController) CreateAddress(ctx *fiber.Ctx) error {
	customerID, err := ctx.ParamsInt("customerId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	var input services.CreateAddressInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	address, err := c.service.Create(uint(customerID), &input)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Location", fmt.Sprintf("%s/customers/%d/addresses/%d", config.MAIN_ROUTES, customerID, address.AddressID))
	return ctx.Status(fiber.StatusCreated).JSON(address)
}

func (c *AddressController) UpdateAddress(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.CreateAddressInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	address, err := c.service.Update(uint(id), &input)
	if err != nil {
		if errors.Is(err, services.ErrAddressNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Address not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(address)
}

func (c *AddressController) DeleteAddress(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	ok, err := c.service.Delete(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Address not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Address deleted"})
}

func (c *AddressController) SetPrimaryAddress(ctx *fiber.Ctx) error {
	customerID, err := ctx.ParamsInt("customerId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer ID"})
	}
	addressID, err := ctx.ParamsInt("addressId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid address ID"})
	}

	if err := c.service.SetPrimary(uint(customerID), uint(addressID)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Primary address updated"})
}
