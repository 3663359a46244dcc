package services

import (
	"customer-app/models"
	"customer-app/repositories"
	"customer-app/utils/idgen"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type OrderService struct {
	DB     *gorm.DB
	orders *repositories.OrderRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:     db,
		orders: repositories.NewOrderRepository(db),
	}
}

type CreateOrderInput struct {
	OrderNumber string  `json:"orderNumber" validate:"max=50"`
	TotalAmount float64 `json:"totalAmount" validate:"required,gt=0"`
	Status      string  `json:"status" validate:"max=20"`
	Description string  `json:"description" validate:"max=500"`
	CustomerIDs []uint  `json:"customerIds"`
}

// GetAll returns every order with its associated customers.
func (s *OrderService) GetAll() ([]models.OrderDTO, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

// GetByID returns the order or nil when no such id exists.
func (s *OrderService) GetByID(id uint) (*models.OrderDTO, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	dto := models.ToOrderDTO(order)
	return &dto, nil
}

// GetByCustomerID lists the orders linked to a customer; an unknown customer
// simply yields an empty list.
func (s *OrderService) GetByCustomerID(customerID uint) ([]models.OrderDTO, error) {
	orders, err := s.orders.GetByCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

// Create inserts the order, then links each supplied customer with a Primary
// role. The order insert and the association inserts are two sequential
// commits; supplied customer ids are not pre-checked, so an unknown id
// surfaces as a referential-integrity failure from the store.
func (s *OrderService) Create(input *CreateOrderInput) (*models.OrderDTO, error) {
	orderNumber := input.OrderNumber
	if orderNumber == "" {
		orderNumber = fmt.Sprintf("ORD-%d", idgen.GenerateID())
	}

	exists, err := s.orders.OrderNumberExists(orderNumber, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateOrderNumber
	}

	status := input.Status
	if status == "" {
		status = "Pending"
	}

	order := models.Order{
		OrderNumber: orderNumber,
		TotalAmount: input.TotalAmount,
		Status:      status,
		Description: input.Description,
		OrderDate:   time.Now().UTC(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.orders.WithTx(tx).Create(&order)
	})
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orders.WithTx(tx)
		for _, customerID := range input.CustomerIDs {
			customerOrder := models.CustomerOrder{
				CustomerID:   customerID,
				OrderID:      order.OrderID,
				Role:         "Primary",
				AssignedDate: time.Now().UTC(),
			}
			if err := repo.CreateCustomerOrder(&customerOrder); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := models.ToOrderDTO(&order)
	return &dto, nil
}

// Update overwrites the order's own fields; customer associations are left
// untouched.
func (s *OrderService) Update(id uint, input *CreateOrderInput) (*models.OrderDTO, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if input.OrderNumber != "" && input.OrderNumber != order.OrderNumber {
		exists, err := s.orders.OrderNumberExists(input.OrderNumber, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateOrderNumber
		}
		order.OrderNumber = input.OrderNumber
	}

	order.TotalAmount = input.TotalAmount
	order.Status = input.Status
	order.Description = input.Description

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.orders.WithTx(tx).Save(order)
	})
	if err != nil {
		return nil, err
	}

	dto := models.ToOrderDTO(order)
	return &dto, nil
}

// Delete removes the order and its customer links, reporting false when the
// order does not exist.
func (s *OrderService) Delete(id uint) (bool, error) {
	if _, err := s.orders.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.orders.WithTx(tx).Delete(id)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func mapOrders(orders []models.Order) []models.OrderDTO {
	dtos := make([]models.OrderDTO, 0, len(orders))
	for i := range orders {
		dtos = append(dtos, models.ToOrderDTO(&orders[i]))
	}
	return dtos
}
