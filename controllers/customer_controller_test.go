package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-app/config"
	"customer-app/database"
	"customer-app/models"
	"customer-app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	routes.SetupDashboardRoutes(app, db)
	routes.SetupCustomerRoutes(app, db)
	routes.SetupAddressRoutes(app, db)
	routes.SetupOrderRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var parsed map[string]interface{}
	if len(raw) > 0 && (raw[0] == '{') {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestCreateCustomerEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/customers", map[string]interface{}{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "john.doe@email.com",
		"phone":     "555-0101",
	})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "John Doe", body["fullName"])
	assert.Equal(t, "Individual", body["customerType"])
	assert.Equal(t, true, body["isActive"])
	assert.EqualValues(t, 0, body["totalOrders"])
	assert.EqualValues(t, 0, body["totalSpent"])
	assert.Contains(t, resp.Header.Get("Location"), "/api/customers/")
}

func TestCreateCustomerDuplicateEmailEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]interface{}{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "dup@email.com",
	}
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/customers", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/customers", payload)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already exists", body["error"])
	assert.Equal(t, "email", body["field"])
	assert.Contains(t, body["message"], "dup@email.com")
}

func TestCreateCustomerValidationEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	// Missing lastName and a malformed email both fail validation.
	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/customers", map[string]interface{}{
		"firstName": "John",
		"email":     "not-an-email",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetCustomerNotFoundEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/customers/999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Customer not found", body["error"])
}

func TestSearchRequiresQueryEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/customers/search", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Search query is required", body["error"])
}

func TestSoftDeleteMovesCustomerToInactiveEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, created := doJSON(t, app, fiber.MethodPost, "/api/customers", map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Smith",
		"email":     "jane.smith@email.com",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int(created["customerId"].(float64))

	resp, body := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/customers/%d", id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body["message"], "soft deleted")
	assert.EqualValues(t, id, body["customerId"])

	req := httptest.NewRequest(fiber.MethodGet, "/api/customers", nil)
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	var active []models.CustomerDTO
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&active))
	resp2.Body.Close()
	assert.Empty(t, active)

	req = httptest.NewRequest(fiber.MethodGet, "/api/customers/inactive", nil)
	resp2, err = app.Test(req, -1)
	require.NoError(t, err)
	var inactive []models.CustomerDTO
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&inactive))
	resp2.Body.Close()
	require.Len(t, inactive, 1)
	assert.Equal(t, "Jane Smith", inactive[0].FullName)
	assert.False(t, inactive[0].IsActive)
}

func TestDeleteCustomerNotFoundEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodDelete, "/api/customers/4242", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAddressRoutesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, created := doJSON(t, app, fiber.MethodPost, "/api/customers", map[string]interface{}{
		"firstName": "Acme",
		"lastName":  "Corporation",
		"email":     "contact@acme.com",
		"customerType": "Business",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int(created["customerId"].(float64))

	resp, address := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/customers/%d/addresses", id), map[string]interface{}{
		"street":    "789 Corporate Blvd",
		"city":      "Metropolis",
		"state":     "IL",
		"zipCode":   "60601",
		"isPrimary": true,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "789 Corporate Blvd, Metropolis, IL 60601", address["fullAddress"])
	assert.Equal(t, true, address["isPrimary"])

	// Addresses of an unknown customer are a 404, not an empty list.
	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/customers/999/addresses", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderRoutesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, created := doJSON(t, app, fiber.MethodPost, "/api/customers", map[string]interface{}{
		"firstName": "John",
		"lastName":  "Doe",
		"email":     "orders@email.com",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := int(created["customerId"].(float64))

	resp, order := doJSON(t, app, fiber.MethodPost, "/api/orders", map[string]interface{}{
		"orderNumber": "ORD-001",
		"totalAmount": 299.99,
		"status":      "Completed",
		"customerIds": []int{id},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ORD-001", order["orderNumber"])

	// The customer projection now counts one order.
	resp, customer := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/customers/%d", id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, customer["totalOrders"])

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/orders/31337", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/customers", map[string]interface{}{
			"firstName": "Customer",
			"lastName":  fmt.Sprintf("Number%d", i),
			"email":     fmt.Sprintf("stats%d@email.com", i),
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, stats := doJSON(t, app, fiber.MethodGet, "/api/customers/stats", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, stats["totalCustomers"])
	assert.EqualValues(t, 3, stats["activeCustomers"])
	assert.EqualValues(t, 0, stats["inactiveCustomers"])
	assert.EqualValues(t, 0, stats["totalRevenue"])
}

func buildCustomerWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"FIRST_NAME", "LAST_NAME", "EMAIL", "PHONE", "CUSTOMER_TYPE", "NOTES"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, header))
	}
	for r, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func postUpload(t *testing.T, app *fiber.App, filename string, content []byte) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/api/customers/upload-excel", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func TestImportCustomersFromExcelEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/customers", map[string]interface{}{
		"firstName": "Already",
		"lastName":  "Here",
		"email":     "existing@email.com",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	workbook := buildCustomerWorkbook(t, [][]interface{}{
		{"Alice", "Smith", "alice@email.com", "555-1111", "Premium", "imported"},
		{"Bob", "", "bob@email.com"},
		{"", "", "", "", "", "blank row"},
		{"Carol", "Jones", "not-an-email"},
		{"Dup", "Licate", "existing@email.com"},
	})

	resp, report := postUpload(t, app, "customers.xlsx", workbook.Bytes())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The blank row is ignored; every counted row lands in exactly one bucket.
	assert.EqualValues(t, 4, report["totalRows"])
	assert.EqualValues(t, 1, report["successCount"])
	assert.EqualValues(t, 1, report["skippedCount"])
	assert.EqualValues(t, 2, report["errorCount"])
	assert.Contains(t, report["skippedItems"], "existing@email.com")

	var stored models.Customer
	require.NoError(t, db.Where("email = ?", "alice@email.com").First(&stored).Error)
	assert.Equal(t, "Premium", stored.CustomerType)
	assert.True(t, stored.IsActive)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Where("email = ?", "bob@email.com").Count(&count).Error)
	assert.Zero(t, count, "rows failing validation must not be inserted")
}

func TestImportRejectsNonExcelFileEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := postUpload(t, app, "customers.txt", []byte("not a workbook"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Only Excel files (.xlsx, .xls) are allowed", body["error"])
}

func TestExportCustomersEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	for _, email := range []string{"first@email.com", "second@email.com"} {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/customers", map[string]interface{}{
			"firstName": "Export",
			"lastName":  "Me",
			"email":     email,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/api/customers/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "customers.xlsx")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "FIRST_NAME", rows[0][0])
	assert.Equal(t, "EMAIL", rows[0][2])

	emails := []string{rows[1][2], rows[2][2]}
	assert.ElementsMatch(t, []string{"first@email.com", "second@email.com"}, emails)
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Healthy", body["status"])
	assert.Equal(t, "Connected", body["database"])
}
