package repositories

import (
	"customer-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(DB *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: DB}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *CustomerRepository) WithTx(tx *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: tx}
}

// GetAllActive returns active customers with addresses and order links loaded.
func (r *CustomerRepository) GetAllActive() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.DB.
		Preload("Addresses").
		Preload("CustomerOrders").
		Where("is_active = ?", true).
		Find(&customers).Error
	return customers, err
}

// GetAllInactive returns soft-deleted customers.
func (r *CustomerRepository) GetAllInactive() ([]models.Customer, error) {
	var customers []models.Customer
	err := r.DB.
		Preload("Addresses").
		Preload("CustomerOrders").
		Where("is_active = ?", false).
		Find(&customers).Error
	return customers, err
}

// GetByID fetches a customer without related collections.
func (r *CustomerRepository) GetByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.DB.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByIDWithIncludes fetches a customer with addresses and order links.
func (r *CustomerRepository) GetByIDWithIncludes(id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.DB.
		Preload("Addresses").
		Preload("CustomerOrders").
		First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetByEmail looks a customer up by its natural key.
func (r *CustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	err := r.DB.Where("email = ?", email).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// EmailExists reports whether any customer other than excludeID owns the
// email. Soft-deleted customers count too; the constraint is global.
func (r *CustomerRepository) EmailExists(email string, excludeID uint) (bool, error) {
	var count int64
	query := r.DB.Model(&models.Customer{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("customer_id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// Search returns active customers whose first name, last name or email
// contains the query as a substring.
func (r *CustomerRepository) Search(query string) ([]models.Customer, error) {
	var customers []models.Customer
	pattern := "%" + query + "%"
	err := r.DB.
		Preload("Addresses").
		Preload("CustomerOrders").
		Where("is_active = ?", true).
		Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", pattern, pattern, pattern).
		Find(&customers).Error
	return customers, err
}

// FilterByType returns active customers whose type matches exactly.
func (r *CustomerRepository) FilterByType(customerType string) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.DB.
		Preload("Addresses").
		Preload("CustomerOrders").
		Where("is_active = ? AND customer_type = ?", true, customerType).
		Find(&customers).Error
	return customers, err
}

// Create inserts the customer and any attached addresses in one transaction.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.DB.Create(customer).Error
}

// Save flushes every field of an already-tracked customer. Loaded
// collections are left alone.
func (r *CustomerRepository) Save(customer *models.Customer) error {
	return r.DB.Omit(clause.Associations).Save(customer).Error
}
