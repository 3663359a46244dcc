package models

import "time"

type Customer struct {
	CustomerID   uint       `json:"customerId" gorm:"primaryKey"`
	FirstName    string     `json:"firstName" gorm:"size:50;not null"`
	LastName     string     `json:"lastName" gorm:"size:50;not null"`
	Email        string     `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Phone        string     `json:"phone" gorm:"size:20"`
	CreatedDate  time.Time  `json:"createdDate"`
	LastUpdated  *time.Time `json:"lastUpdated"`
	IsActive     bool       `json:"isActive" gorm:"default:true"`
	CustomerType string     `json:"customerType" gorm:"size:50;default:'Individual'"`
	Notes        string     `json:"notes" gorm:"size:500"`

	Addresses      []Address       `json:"addresses" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CustomerOrders []CustomerOrder `json:"customerOrders" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

type Address struct {
	AddressID   uint   `json:"addressId" gorm:"primaryKey"`
	CustomerID  uint   `json:"customerId" gorm:"not null;index"`
	AddressType string `json:"addressType" gorm:"size:50;default:'Home'"`
	Street      string `json:"street" gorm:"size:200;not null"`
	City        string `json:"city" gorm:"size:100;not null"`
	State       string `json:"state" gorm:"size:50;not null"`
	ZipCode     string `json:"zipCode" gorm:"size:20;not null"`
	Country     string `json:"country" gorm:"size:50;default:'USA'"`
	IsPrimary   bool   `json:"isPrimary" gorm:"default:false"`
}
