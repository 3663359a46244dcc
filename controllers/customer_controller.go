package controllers

import (
	"bytes"
	"customer-app/config"
	"customer-app/models"
	"customer-app/services"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB      *gorm.DB
	service *services.CustomerService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db, service: services.NewCustomerService(db)}
}

func (c *CustomerController) GetAllCustomers(ctx *fiber.Ctx) error {
	customers, err := c.service.GetAllActive()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(customers)
}

func (c *CustomerController) GetInactiveCustomers(ctx *fiber.Ctx) error {
	customers, err := c.service.GetAllInactive()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(customers)
}

func (c *CustomerController) GetCustomerByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	customer, err := c.service.GetByID(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if customer == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(customer)
}

func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var input services.CreateCustomerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := c.service.Create(&input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Email already exists",
				"message": fmt.Sprintf("A customer with email '%s' already exists.", input.Email),
				"field":   "email",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Location", fmt.Sprintf("%s/customers/%d", config.MAIN_ROUTES, customer.CustomerID))
	return ctx.Status(fiber.StatusCreated).JSON(customer)
}

func (c *CustomerController) UpdateCustomer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.UpdateCustomerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := c.service.Update(uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		case errors.Is(err, services.ErrDuplicateEmail):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Email already exists",
				"message": fmt.Sprintf("A customer with email '%s' already exists.", input.Email),
				"field":   "email",
			})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(customer)
}

func (c *CustomerController) PatchCustomer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input services.PatchCustomerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := c.service.Patch(uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCustomerNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		case errors.Is(err, services.ErrDuplicateEmail):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Email already exists",
				"message": fmt.Sprintf("A customer with email '%s' already exists.", input.Email),
				"field":   "email",
			})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return ctx.Status(fiber.StatusOK).JSON(customer)
}

func (c *CustomerController) DeleteCustomer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	ok, err := c.service.SoftDelete(uint(id))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Customer successfully deactivated (soft deleted)",
		"customerId": id,
		"timestamp":  time.Now().UTC(),
	})
}

func (c *CustomerController) SearchCustomers(ctx *fiber.Ctx) error {
	query := ctx.Query("query")
	if query == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Search query is required"})
	}

	customers, err := c.service.Search(query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(customers)
}

func (c *CustomerController) FilterCustomersByType(ctx *fiber.Ctx) error {
	customers, err := c.service.FilterByType(ctx.Params("customerType"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(customers)
}

func (c *CustomerController) GetCustomerStats(ctx *fiber.Ctx) error {
	stats, err := c.service.GetStatistics()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(stats)
}

// ============================================================================
// Begin upload customers from excel file
// ============================================================================

type CustomerUploadResult struct {
	TotalRows     int      `json:"totalRows"`
	SuccessCount  int      `json:"successCount"`
	SkippedCount  int      `json:"skippedCount"`
	ErrorCount    int      `json:"errorCount"`
	SkippedItems  []string `json:"skippedItems"`
	ErrorMessages []string `json:"errorMessages"`
}

// ImportCustomersFromExcel bulk-creates customers from an uploaded workbook.
// Expected columns: FIRST_NAME, LAST_NAME, EMAIL, PHONE, CUSTOMER_TYPE, NOTES.
// Blank rows are ignored entirely; rows whose email already exists are
// skipped; all created rows commit as one transaction. Every counted row ends
// up in exactly one of the success, skipped or error buckets.
func (c *CustomerController) ImportCustomersFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File is required"})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only Excel files (.xlsx, .xls) are allowed"})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open file"})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read Excel file"})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No sheets found in Excel file"})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read rows"})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Excel file must contain header and at least one data row"})
	}

	result := CustomerUploadResult{
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2 // header is row 1

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		result.TotalRows++

		if len(row) < 3 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected at least 3)", rowNum))
			continue
		}

		firstName := strings.TrimSpace(row[0])
		lastName := strings.TrimSpace(row[1])
		email := strings.TrimSpace(row[2])
		phone := ""
		customerType := ""
		notes := ""
		if len(row) > 3 {
			phone = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			customerType = strings.TrimSpace(row[4])
		}
		if len(row) > 5 {
			notes = strings.TrimSpace(row[5])
		}

		if firstName == "" || lastName == "" || email == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: FIRST_NAME, LAST_NAME and EMAIL are required", rowNum))
			continue
		}

		if !isValidEmail(email) {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid email format '%s'", rowNum, email))
			continue
		}

		var count int64
		if err := tx.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to check for duplicate email - %s", rowNum, err.Error()))
			continue
		}
		if count > 0 {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, email)
			continue
		}

		if customerType == "" {
			customerType = "Individual"
		}

		customer := models.Customer{
			FirstName:    firstName,
			LastName:     lastName,
			Email:        email,
			Phone:        phone,
			CustomerType: customerType,
			Notes:        notes,
			CreatedDate:  time.Now().UTC(),
			IsActive:     true,
		}

		if err := tx.Create(&customer).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create customer - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to commit transaction"})
	}

	return ctx.Status(fiber.StatusOK).JSON(result)
}

// isValidEmail performs a minimal shape check for import rows.
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	if len(parts[0]) == 0 || len(parts[1]) == 0 {
		return false
	}
	return strings.Contains(parts[1], ".")
}

// ============================================================================
// Begin export customers to excel file
// ============================================================================

// ExportCustomers streams every customer as an .xlsx download.
func (c *CustomerController) ExportCustomers(ctx *fiber.Ctx) error {
	var customers []models.Customer
	if err := c.DB.Order("created_date DESC").Find(&customers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch customers"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"FIRST_NAME", "LAST_NAME", "EMAIL", "PHONE", "CUSTOMER_TYPE", "NOTES", "IS_ACTIVE", "CREATED_DATE"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, customer := range customers {
		values := []interface{}{
			customer.FirstName,
			customer.LastName,
			customer.Email,
			customer.Phone,
			customer.CustomerType,
			customer.Notes,
			customer.IsActive,
			customer.CreatedDate.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build workbook"})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="customers.xlsx"`)
	return ctx.Send(buf.Bytes())
}
