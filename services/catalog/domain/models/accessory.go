package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/catalog/domain"
)

// Accessory is a retail add-on sold from a sales point.
type Accessory struct {
	ID             int64
	Name           string
	SalesPoint     string
	Price          decimal.Decimal
	QuantityOnHand int
}

// NewAccessory builds an Accessory.
func NewAccessory(name, salesPoint string, price decimal.Decimal, quantity int) (*Accessory, error) {
	a := &Accessory{
		Name:           strings.TrimSpace(name),
		SalesPoint:     strings.TrimSpace(salesPoint),
		Price:          price,
		QuantityOnHand: quantity,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the accessory's field constraints.
func (a *Accessory) Validate() error {
	switch {
	case a.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidAccessory)
	case !a.Price.IsPositive():
		return fmt.Errorf("%w: price must be greater than zero", domain.ErrInvalidAccessory)
	case a.QuantityOnHand < 0:
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidAccessory)
	}
	return nil
}
