package services

import "errors"

// Sentinel errors the controllers translate into HTTP status codes.
var (
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrAddressNotFound      = errors.New("address not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)
