package domain

import "errors"

// Sentinel errors for the customer domain. Use errors.Is() to check these.
var (
	// ErrCustomerNotFound indicates the requested customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidCustomer indicates a customer record violates domain constraints.
	ErrInvalidCustomer = errors.New("invalid customer")
)
