package repositories

import (
	"customer-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(DB *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: DB}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: tx}
}

// GetAll returns every order with its customer links and their customers.
func (r *OrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.
		Preload("CustomerOrders.Customer").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.
		Preload("CustomerOrders.Customer").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByCustomerID returns all orders linked to the customer.
func (r *OrderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.
		Preload("CustomerOrders.Customer").
		Joins("JOIN customer_orders ON customer_orders.order_id = orders.order_id").
		Where("customer_orders.customer_id = ?", customerID).
		Find(&orders).Error
	return orders, err
}

// OrderNumberExists reports whether any order other than excludeID carries
// the order number.
func (r *OrderRepository) OrderNumberExists(orderNumber string, excludeID uint) (bool, error) {
	var count int64
	query := r.DB.Model(&models.Order{}).Where("order_number = ?", orderNumber)
	if excludeID != 0 {
		query = query.Where("order_id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) Create(order *models.Order) error {
	return r.DB.Create(order).Error
}

func (r *OrderRepository) Save(order *models.Order) error {
	return r.DB.Omit(clause.Associations).Save(order).Error
}

func (r *OrderRepository) CreateCustomerOrder(customerOrder *models.CustomerOrder) error {
	return r.DB.Create(customerOrder).Error
}

// Delete removes the order and its customer links.
func (r *OrderRepository) Delete(id uint) error {
	if err := r.DB.Where("order_id = ?", id).Delete(&models.CustomerOrder{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(&models.Order{}, id).Error
}
