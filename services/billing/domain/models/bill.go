package models

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
)

// BillItem is one priced line. Name and Price are copied from the catalog
// record when the item is added and never follow later catalog edits.
type BillItem struct {
	ID             int64
	Type           catalogmodels.Kind
	Name           string
	Price          decimal.Decimal
	Quantity       int
	OriginalItemID int64
}

// LineTotal is Price × Quantity.
func (i BillItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Bill is a committed, immutable record of a sale. Only Paid may change
// after creation.
type Bill struct {
	ID         int64
	CustomerID int64
	Date       time.Time
	Items      []BillItem
	Total      decimal.Decimal
	Paid       bool
	Notes      string
}

// Clone returns a copy whose Items slice is not shared with b.
func (b Bill) Clone() Bill {
	b.Items = slices.Clone(b.Items)
	return b
}

// ItemCount is the number of units on the bill.
func (b Bill) ItemCount() int {
	n := 0
	for _, it := range b.Items {
		n += it.Quantity
	}
	return n
}

// Total sums price × quantity over items.
func Total(items []BillItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
