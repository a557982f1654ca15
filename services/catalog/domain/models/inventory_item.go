package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/catalog/domain"
)

// InventoryType distinguishes loose parts from whole carts in general inventory.
type InventoryType string

const (
	InventoryPart InventoryType = "part"
	InventoryCart InventoryType = "cart"
)

// InventoryItem is general stock. Items with ForSale=false may not be added
// to a bill through the catalog.
type InventoryItem struct {
	ID             int64
	Name           string
	Type           InventoryType
	Price          decimal.Decimal
	ForSale        bool
	QuantityOnHand int
}

// NewInventoryItem builds an InventoryItem.
func NewInventoryItem(name string, typ InventoryType, price decimal.Decimal, forSale bool, quantity int) (*InventoryItem, error) {
	i := &InventoryItem{
		Name:           strings.TrimSpace(name),
		Type:           InventoryType(strings.ToLower(strings.TrimSpace(string(typ)))),
		Price:          price,
		ForSale:        forSale,
		QuantityOnHand: quantity,
	}
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i, nil
}

// Validate checks the item's field constraints.
func (i *InventoryItem) Validate() error {
	switch {
	case i.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInventoryItem)
	case i.Type != InventoryPart && i.Type != InventoryCart:
		return fmt.Errorf("%w: type must be part or cart", domain.ErrInvalidInventoryItem)
	case !i.Price.IsPositive():
		return fmt.Errorf("%w: price must be greater than zero", domain.ErrInvalidInventoryItem)
	case i.QuantityOnHand < 0:
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInventoryItem)
	}
	return nil
}
