package repositories

import (
	"customer-app/models"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(DB *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: DB}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *AddressRepository) WithTx(tx *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: tx}
}

func (r *AddressRepository) GetByCustomerID(customerID uint) ([]models.Address, error) {
	var addresses []models.Address
	err := r.DB.Where("customer_id = ?", customerID).Find(&addresses).Error
	return addresses, err
}

func (r *AddressRepository) GetByID(id uint) (*models.Address, error) {
	var address models.Address
	err := r.DB.First(&address, id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) Create(address *models.Address) error {
	return r.DB.Create(address).Error
}

func (r *AddressRepository) Save(address *models.Address) error {
	return r.DB.Save(address).Error
}

func (r *AddressRepository) Delete(id uint) error {
	return r.DB.Delete(&models.Address{}, id).Error
}

// ClearPrimary drops the primary flag on every address of the customer.
func (r *AddressRepository) ClearPrimary(customerID uint) error {
	return r.DB.Model(&models.Address{}).
		Where("customer_id = ? AND is_primary = ?", customerID, true).
		Update("is_primary", false).Error
}
