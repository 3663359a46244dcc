package database

import (
	"customer-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Customer{},
		&models.Address{},
		&models.Order{},
		&models.CustomerOrder{},
	)
}
