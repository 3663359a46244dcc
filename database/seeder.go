package database

import (
	"customer-app/models"
	"log"
	"time"

	"gorm.io/gorm"
)

// RunSeeders loads the sample data set. Seeding is skipped entirely when any
// customer row already exists.
func RunSeeders(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		log.Printf("Seeder: failed to inspect customers table: %v", err)
		return
	}
	if count > 0 {
		log.Println("Seeder: database already contains data, skipping")
		return
	}

	log.Println("Seeder: loading sample data")

	now := time.Now().UTC()

	customers := []models.Customer{
		{
			FirstName:    "John",
			LastName:     "Doe",
			Email:        "john.doe@email.com",
			Phone:        "(555) 123-4567",
			CustomerType: "Individual",
			IsActive:     true,
			CreatedDate:  now,
		},
		{
			FirstName:    "Jane",
			LastName:     "Smith",
			Email:        "jane.smith@email.com",
			Phone:        "(555) 987-6543",
			CustomerType: "Premium",
			IsActive:     true,
			CreatedDate:  now,
		},
		{
			FirstName:    "Acme",
			LastName:     "Corporation",
			Email:        "contact@acme.com",
			Phone:        "(555) 555-0123",
			CustomerType: "Business",
			IsActive:     true,
			CreatedDate:  now,
		},
	}

	if err := db.Create(&customers).Error; err != nil {
		log.Printf("Seeder: failed to create customers: %v", err)
		return
	}

	addresses := []models.Address{
		{
			CustomerID:  customers[0].CustomerID,
			AddressType: "Home",
			Street:      "123 Main St",
			City:        "Anytown",
			State:       "CA",
			ZipCode:     "12345",
			Country:     "USA",
			IsPrimary:   true,
		},
		{
			CustomerID:  customers[1].CustomerID,
			AddressType: "Work",
			Street:      "456 Business Ave",
			City:        "Commerce City",
			State:       "NY",
			ZipCode:     "67890",
			Country:     "USA",
			IsPrimary:   true,
		},
	}

	if err := db.Create(&addresses).Error; err != nil {
		log.Printf("Seeder: failed to create addresses: %v", err)
		return
	}

	orders := []models.Order{
		{
			OrderNumber: "ORD-001",
			TotalAmount: 299.99,
			Status:      "Completed",
			Description: "First sample order",
			OrderDate:   now,
		},
		{
			OrderNumber: "ORD-002",
			TotalAmount: 149.50,
			Status:      "Pending",
			Description: "Second sample order",
			OrderDate:   now,
		},
	}

	if err := db.Create(&orders).Error; err != nil {
		log.Printf("Seeder: failed to create orders: %v", err)
		return
	}

	customerOrders := []models.CustomerOrder{
		{
			CustomerID:   customers[0].CustomerID,
			OrderID:      orders[0].OrderID,
			Role:         "Primary",
			AssignedDate: now,
		},
		{
			CustomerID:   customers[1].CustomerID,
			OrderID:      orders[1].OrderID,
			Role:         "Primary",
			AssignedDate: now,
		},
	}

	if err := db.Create(&customerOrders).Error; err != nil {
		log.Printf("Seeder: failed to create customer orders: %v", err)
		return
	}

	log.Println("Seeder: sample data loaded")
}
