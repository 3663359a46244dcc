package services

import (
	"customer-app/models"
	"customer-app/repositories"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB        *gorm.DB
	customers *repositories.CustomerRepository
	stats     *repositories.StatisticsRepository
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{
		DB:        db,
		customers: repositories.NewCustomerRepository(db),
		stats:     repositories.NewStatisticsRepository(db),
	}
}

type CreateCustomerInput struct {
	FirstName      string              `json:"firstName" validate:"required,max=50"`
	LastName       string              `json:"lastName" validate:"required,max=50"`
	Email          string              `json:"email" validate:"required,email,max=100"`
	Phone          string              `json:"phone" validate:"max=20"`
	CustomerType   string              `json:"customerType" validate:"max=50"`
	Notes          string              `json:"notes" validate:"max=500"`
	PrimaryAddress *CreateAddressInput `json:"primaryAddress"`
}

type UpdateCustomerInput struct {
	FirstName    string `json:"firstName" validate:"required,max=50"`
	LastName     string `json:"lastName" validate:"required,max=50"`
	Email        string `json:"email" validate:"required,email,max=100"`
	Phone        string `json:"phone" validate:"max=20"`
	IsActive     bool   `json:"isActive"`
	CustomerType string `json:"customerType" validate:"max=50"`
	Notes        string `json:"notes" validate:"max=500"`
}

// PatchCustomerInput carries optional fields. Strings are applied only when
// non-empty; the active flag is applied when the key is present at all.
type PatchCustomerInput struct {
	FirstName    string `json:"firstName" validate:"max=50"`
	LastName     string `json:"lastName" validate:"max=50"`
	Email        string `json:"email" validate:"omitempty,email,max=100"`
	Phone        string `json:"phone" validate:"max=20"`
	IsActive     *bool  `json:"isActive"`
	CustomerType string `json:"customerType" validate:"max=50"`
	Notes        string `json:"notes" validate:"max=500"`
}

// GetAllActive returns every active customer, projected.
func (s *CustomerService) GetAllActive() ([]models.CustomerDTO, error) {
	customers, err := s.customers.GetAllActive()
	if err != nil {
		return nil, err
	}
	return mapCustomers(customers), nil
}

// GetAllInactive returns every soft-deleted customer, projected.
func (s *CustomerService) GetAllInactive() ([]models.CustomerDTO, error) {
	customers, err := s.customers.GetAllInactive()
	if err != nil {
		return nil, err
	}
	return mapCustomers(customers), nil
}

// GetByID returns the customer or nil when no such id exists.
func (s *CustomerService) GetByID(id uint) (*models.CustomerDTO, error) {
	customer, err := s.customers.GetByIDWithIncludes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	dto := models.ToCustomerDTO(customer)
	return &dto, nil
}

// Search finds active customers by name or email substring.
func (s *CustomerService) Search(query string) ([]models.CustomerDTO, error) {
	customers, err := s.customers.Search(query)
	if err != nil {
		return nil, err
	}
	return mapCustomers(customers), nil
}

// FilterByType returns active customers whose type matches exactly.
func (s *CustomerService) FilterByType(customerType string) ([]models.CustomerDTO, error) {
	customers, err := s.customers.FilterByType(customerType)
	if err != nil {
		return nil, err
	}
	return mapCustomers(customers), nil
}

// Create inserts a new customer with an optional primary address. The email
// must be unused by any customer, active or not.
func (s *CustomerService) Create(input *CreateCustomerInput) (*models.CustomerDTO, error) {
	exists, err := s.customers.EmailExists(input.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	customerType := input.CustomerType
	if customerType == "" {
		customerType = "Individual"
	}

	customer := models.Customer{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		CustomerType: customerType,
		Notes:        input.Notes,
		CreatedDate:  time.Now().UTC(),
		IsActive:     true,
	}

	if input.PrimaryAddress != nil {
		customer.Addresses = []models.Address{buildAddress(0, input.PrimaryAddress)}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.customers.WithTx(tx).Create(&customer)
	})
	if err != nil {
		return nil, err
	}

	// Mail is dispatched out of band so a slow SMTP host cannot stall the
	// create response.
	go SendWelcomeEmail(&customer)

	dto := models.ToCustomerDTO(&customer)
	return &dto, nil
}

// Update replaces every mutable field of the customer.
func (s *CustomerService) Update(id uint, input *UpdateCustomerInput) (*models.CustomerDTO, error) {
	customer, err := s.customers.GetByIDWithIncludes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	exists, err := s.customers.EmailExists(input.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	now := time.Now().UTC()
	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.IsActive = input.IsActive
	customer.CustomerType = input.CustomerType
	customer.Notes = input.Notes
	customer.LastUpdated = &now

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.customers.WithTx(tx).Save(customer)
	})
	if err != nil {
		return nil, err
	}

	dto := models.ToCustomerDTO(customer)
	return &dto, nil
}

// Patch overwrites only the supplied fields. The duplicate-email check runs
// only when the input carries a non-empty email differing from the current
// one. LastUpdated advances even when no field changed.
func (s *CustomerService) Patch(id uint, input *PatchCustomerInput) (*models.CustomerDTO, error) {
	customer, err := s.customers.GetByIDWithIncludes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if input.Email != "" && input.Email != customer.Email {
		exists, err := s.customers.EmailExists(input.Email, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateEmail
		}
	}

	if input.FirstName != "" {
		customer.FirstName = input.FirstName
	}
	if input.LastName != "" {
		customer.LastName = input.LastName
	}
	if input.Email != "" {
		customer.Email = input.Email
	}
	if input.Phone != "" {
		customer.Phone = input.Phone
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}
	if input.CustomerType != "" {
		customer.CustomerType = input.CustomerType
	}
	if input.Notes != "" {
		customer.Notes = input.Notes
	}

	now := time.Now().UTC()
	customer.LastUpdated = &now

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.customers.WithTx(tx).Save(customer)
	})
	if err != nil {
		return nil, err
	}

	dto := models.ToCustomerDTO(customer)
	return &dto, nil
}

// SoftDelete flips the active flag off. The row is never removed, and
// deleting an already-inactive customer still reports success.
func (s *CustomerService) SoftDelete(id uint) (bool, error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	now := time.Now().UTC()
	customer.IsActive = false
	customer.LastUpdated = &now

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.customers.WithTx(tx).Save(customer)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetStatistics returns the dashboard aggregate.
func (s *CustomerService) GetStatistics() (*models.CustomerStatsDTO, error) {
	return s.stats.GetCustomerStatistics()
}

func mapCustomers(customers []models.Customer) []models.CustomerDTO {
	dtos := make([]models.CustomerDTO, 0, len(customers))
	for i := range customers {
		dtos = append(dtos, models.ToCustomerDTO(&customers[i]))
	}
	return dtos
}
