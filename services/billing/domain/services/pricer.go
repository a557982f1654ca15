package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/billing/domain"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
)

// Priced is the billable view of a catalog record.
type Priced struct {
	Kind       catalogmodels.Kind
	Name       string
	Price      decimal.Decimal
	OriginalID int64
}

// Price maps a catalog record to its bill kind, display name and unit price:
//
//	Job           → job,       Description, HourlyRate
//	Part          → part,      Name,        MarketPrice
//	InventoryItem → inventory, Name,        Price
//	Accessory     → accessory, Name,        Price
//
// Pointers to records are accepted. The result copies the values, so later
// edits to the record do not reach it.
func Price(rec catalogmodels.Record) (Priced, error) {
	switch r := rec.(type) {
	case catalogmodels.Job:
		return Priced{catalogmodels.KindJob, r.Description, r.HourlyRate, r.ID}, nil
	case catalogmodels.Part:
		return Priced{catalogmodels.KindPart, r.Name, r.MarketPrice, r.ID}, nil
	case catalogmodels.InventoryItem:
		return Priced{catalogmodels.KindInventory, r.Name, r.Price, r.ID}, nil
	case catalogmodels.Accessory:
		return Priced{catalogmodels.KindAccessory, r.Name, r.Price, r.ID}, nil
	case *catalogmodels.Job:
		if r != nil {
			return Price(*r)
		}
	case *catalogmodels.Part:
		if r != nil {
			return Price(*r)
		}
	case *catalogmodels.InventoryItem:
		if r != nil {
			return Price(*r)
		}
	case *catalogmodels.Accessory:
		if r != nil {
			return Price(*r)
		}
	}
	return Priced{}, fmt.Errorf("%w: %T", domain.ErrUnsupportedRecord, rec)
}
