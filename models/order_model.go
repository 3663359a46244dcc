package models

import "time"

type Order struct {
	OrderID     uint      `json:"orderId" gorm:"primaryKey"`
	OrderNumber string    `json:"orderNumber" gorm:"size:50;not null;uniqueIndex"`
	OrderDate   time.Time `json:"orderDate"`
	TotalAmount float64   `json:"totalAmount" gorm:"type:decimal(18,2)"`
	Status      string    `json:"status" gorm:"size:20;default:'Pending'"`
	Description string    `json:"description" gorm:"size:500"`

	CustomerOrders []CustomerOrder `json:"customerOrders" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// CustomerOrder is the many-to-many join between customers and orders.
type CustomerOrder struct {
	CustomerID   uint      `json:"customerId" gorm:"primaryKey;autoIncrement:false"`
	OrderID      uint      `json:"orderId" gorm:"primaryKey;autoIncrement:false"`
	AssignedDate time.Time `json:"assignedDate"`
	Role         string    `json:"role" gorm:"size:50;default:'Primary'"`

	Customer Customer `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Order    Order    `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}
