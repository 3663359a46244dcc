package models

import (
	"fmt"
	"time"
)

// Response shapes returned by the API. Field names follow the contract the
// admin UI consumes, so they stay camelCase regardless of column naming.

type CustomerDTO struct {
	CustomerID   uint         `json:"customerId"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	CreatedDate  time.Time    `json:"createdDate"`
	IsActive     bool         `json:"isActive"`
	CustomerType string       `json:"customerType"`
	Addresses    []AddressDTO `json:"addresses"`
	TotalOrders  int          `json:"totalOrders"`
	TotalSpent   float64      `json:"totalSpent"`
}

type AddressDTO struct {
	AddressID   uint   `json:"addressId"`
	AddressType string `json:"addressType"`
	FullAddress string `json:"fullAddress"`
	IsPrimary   bool   `json:"isPrimary"`
}

type OrderDTO struct {
	OrderID     uint                 `json:"orderId"`
	OrderNumber string               `json:"orderNumber"`
	OrderDate   time.Time            `json:"orderDate"`
	TotalAmount float64              `json:"totalAmount"`
	Status      string               `json:"status"`
	Description string               `json:"description"`
	Customers   []CustomerSummaryDTO `json:"customers"`
}

type CustomerSummaryDTO struct {
	CustomerID uint   `json:"customerId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type CustomerStatsDTO struct {
	TotalCustomers        int                    `json:"totalCustomers"`
	ActiveCustomers       int                    `json:"activeCustomers"`
	InactiveCustomers     int                    `json:"inactiveCustomers"`
	TotalOrders           int                    `json:"totalOrders"`
	TotalRevenue          float64                `json:"totalRevenue"`
	CustomerTypeBreakdown []CustomerTypeStatsDTO `json:"customerTypeBreakdown"`
}

type CustomerTypeStatsDTO struct {
	CustomerType string  `json:"customerType"`
	Count        int     `json:"count"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ToCustomerDTO flattens a customer with its loaded addresses and order links.
// A customer without a stored type is reported as "Individual". TotalSpent is
// not computed anywhere in the system and is always reported as zero.
func ToCustomerDTO(c *Customer) CustomerDTO {
	customerType := c.CustomerType
	if customerType == "" {
		customerType = "Individual"
	}

	addresses := make([]AddressDTO, 0, len(c.Addresses))
	for i := range c.Addresses {
		addresses = append(addresses, ToAddressDTO(&c.Addresses[i]))
	}

	return CustomerDTO{
		CustomerID:   c.CustomerID,
		FullName:     c.FirstName + " " + c.LastName,
		Email:        c.Email,
		Phone:        c.Phone,
		CreatedDate:  c.CreatedDate,
		IsActive:     c.IsActive,
		CustomerType: customerType,
		Addresses:    addresses,
		TotalOrders:  len(c.CustomerOrders),
		TotalSpent:   0,
	}
}

func ToAddressDTO(a *Address) AddressDTO {
	return AddressDTO{
		AddressID:   a.AddressID,
		AddressType: a.AddressType,
		FullAddress: fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.ZipCode),
		IsPrimary:   a.IsPrimary,
	}
}

// ToOrderDTO flattens an order with its customer links. Each linked customer
// must be preloaded through the join row.
func ToOrderDTO(o *Order) OrderDTO {
	customers := make([]CustomerSummaryDTO, 0, len(o.CustomerOrders))
	for i := range o.CustomerOrders {
		co := &o.CustomerOrders[i]
		customers = append(customers, CustomerSummaryDTO{
			CustomerID: co.CustomerID,
			FullName:   co.Customer.FirstName + " " + co.Customer.LastName,
			Email:      co.Customer.Email,
			Role:       co.Role,
		})
	}

	return OrderDTO{
		OrderID:     o.OrderID,
		OrderNumber: o.OrderNumber,
		OrderDate:   o.OrderDate,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		Description: o.Description,
		Customers:   customers,
	}
}
