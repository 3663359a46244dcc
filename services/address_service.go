package services

import (
	"customer-app/models"
	"customer-app/repositories"
	"errors"

	"gorm.io/gorm"
)

type AddressService struct {
	DB        *gorm.DB
	addresses *repositories.AddressRepository
	customers *repositories.CustomerRepository
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{
		DB:        db,
		addresses: repositories.NewAddressRepository(db),
		customers: repositories.NewCustomerRepository(db),
	}
}

type CreateAddressInput struct {
	AddressType string `json:"addressType" validate:"max=50"`
	Street      string `json:"street" validate:"required,max=200"`
	City        string `json:"city" validate:"required,max=100"`
	State       string `json:"state" validate:"required,max=50"`
	ZipCode     string `json:"zipCode" validate:"required,max=20"`
	Country     string `json:"country" validate:"max=50"`
	IsPrimary   bool   `json:"isPrimary"`
}

// GetCustomerAddresses lists every address of the customer.
func (s *AddressService) GetCustomerAddresses(customerID uint) ([]models.AddressDTO, error) {
	if _, err := s.customers.GetByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	addresses, err := s.addresses.GetByCustomerID(customerID)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.AddressDTO, 0, len(addresses))
	for i := range addresses {
		dtos = append(dtos, models.ToAddressDTO(&addresses[i]))
	}
	return dtos, nil
}

// Create adds an address to an existing customer. A new primary address
// demotes every current primary first; the demotion and the insert are two
// sequential commits, matching the system's observed behavior.
func (s *AddressService) Create(customerID uint, input *CreateAddressInput) (*models.AddressDTO, error) {
	if _, err := s.customers.GetByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	address := buildAddress(customerID, input)

	if address.IsPrimary {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.addresses.WithTx(tx).ClearPrimary(customerID)
		})
		if err != nil {
			return nil, err
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.addresses.WithTx(tx).Create(&address)
	})
	if err != nil {
		return nil, err
	}

	dto := models.ToAddressDTO(&address)
	return &dto, nil
}

// Update replaces every field of the address; there is no partial variant.
func (s *AddressService) Update(addressID uint, input *CreateAddressInput) (*models.AddressDTO, error) {
	address, err := s.addresses.GetByID(addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	address.AddressType = input.AddressType
	address.Street = input.Street
	address.City = input.City
	address.State = input.State
	address.ZipCode = input.ZipCode
	address.Country = input.Country
	address.IsPrimary = input.IsPrimary

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.addresses.WithTx(tx).Save(address)
	})
	if err != nil {
		return nil, err
	}

	dto := models.ToAddressDTO(address)
	return &dto, nil
}

// Delete removes the address row, reporting false when it does not exist.
func (s *AddressService) Delete(addressID uint) (bool, error) {
	if _, err := s.addresses.GetByID(addressID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.addresses.WithTx(tx).Delete(addressID)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetPrimary flags exactly the matching address as primary and demotes the
// rest. An addressId that does not belong to the customer leaves no address
// primary; that silent no-match is intentional, not an error.
func (s *AddressService) SetPrimary(customerID, addressID uint) error {
	addresses, err := s.addresses.GetByCustomerID(customerID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.addresses.WithTx(tx)
		for i := range addresses {
			addresses[i].IsPrimary = addresses[i].AddressID == addressID
			if err := repo.Save(&addresses[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func buildAddress(customerID uint, input *CreateAddressInput) models.Address {
	addressType := input.AddressType
	if addressType == "" {
		addressType = "Home"
	}
	country := input.Country
	if country == "" {
		country = "USA"
	}
	return models.Address{
		CustomerID:  customerID,
		AddressType: addressType,
		Street:      input.Street,
		City:        input.City,
		State:       input.State,
		ZipCode:     input.ZipCode,
		Country:     country,
		IsPrimary:   input.IsPrimary,
	}
}
