package services

import (
	"customer-app/database"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory store. The connection pool is capped
// at one so every query sees the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestCustomer(t *testing.T, svc *CustomerService, email string) uint {
	t.Helper()

	dto, err := svc.Create(&CreateCustomerInput{
		FirstName: "Test",
		LastName:  "Customer",
		Email:     email,
	})
	require.NoError(t, err)
	return dto.CustomerID
}
