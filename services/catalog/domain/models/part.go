package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/catalog/domain"
)

var hundred = decimal.NewFromInt(100)

// Part is a stocked component. Billing charges MarketPrice.
type Part struct {
	ID             int64
	Name           string
	Cost           decimal.Decimal
	MarketPrice    decimal.Decimal
	Markup         decimal.Decimal // percent over cost, 2 decimals
	QuantityOnHand int
	Supplier       string
}

// NewPart builds a Part and computes its markup.
func NewPart(name string, cost, marketPrice decimal.Decimal, quantity int, supplier string) (*Part, error) {
	p := &Part{
		Name:           strings.TrimSpace(name),
		Cost:           cost,
		MarketPrice:    marketPrice,
		QuantityOnHand: quantity,
		Supplier:       strings.TrimSpace(supplier),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Markup = ComputeMarkup(p.Cost, p.MarketPrice)
	return p, nil
}

// Validate checks the part's field constraints.
func (p *Part) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidPart)
	case !p.Cost.IsPositive():
		return fmt.Errorf("%w: cost must be greater than zero", domain.ErrInvalidPart)
	case !p.MarketPrice.IsPositive():
		return fmt.Errorf("%w: market price must be greater than zero", domain.ErrInvalidPart)
	case p.QuantityOnHand < 0:
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidPart)
	}
	return nil
}

// ComputeMarkup returns (marketPrice-cost)/cost*100 rounded to 2 places,
// or zero when cost is zero.
func ComputeMarkup(cost, marketPrice decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return marketPrice.Sub(cost).Div(cost).Mul(hundred).Round(2)
}
