package models

import (
	"fmt"
	"strings"

	"github.com/ghuser/cartshop/services/customer/domain"
)

// Customer is a person the shop bills. The billing core only ever reads
// customers by ID; it never changes their fields.
type Customer struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	Address string
}

// NewCustomer builds a Customer from trimmed input. Name and phone are
// required; the ID is assigned by the store on insert.
func NewCustomer(name, phone, email, address string) (*Customer, error) {
	c := &Customer{
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		Email:   strings.TrimSpace(email),
		Address: strings.TrimSpace(address),
	}
	if c.Name == "" || c.Phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", domain.ErrInvalidCustomer)
	}
	return c, nil
}

// Matches reports whether the customer satisfies a selector search term.
// Name and email match case-insensitively; phone matches the raw term.
// A blank term matches every customer.
func (c *Customer) Matches(term string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), lower) ||
		strings.Contains(c.Phone, term) ||
		strings.Contains(strings.ToLower(c.Email), lower)
}
