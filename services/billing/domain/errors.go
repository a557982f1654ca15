package domain

import "errors"

// Sentinel errors for the billing domain. Use errors.Is() to check these.
// The messages of ErrNoActiveCustomer and ErrNothingToBill are shown to the
// operator as-is.
var (
	// ErrNoActiveCustomer rejects adding a bill item while no customer is selected.
	ErrNoActiveCustomer = errors.New("please select a customer first")

	// ErrNothingToBill rejects a commit without a customer or without items.
	ErrNothingToBill = errors.New("cannot create a bill without a customer or items")

	// ErrInvalidQuantity indicates a bill item quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrNotForSale indicates an inventory item flagged as not for sale.
	ErrNotForSale = errors.New("item is not for sale")

	// ErrUnsupportedRecord indicates a value the pricer cannot turn into a bill item.
	ErrUnsupportedRecord = errors.New("unsupported catalog record")

	// ErrBillNotFound indicates the requested bill does not exist.
	ErrBillNotFound = errors.New("bill not found")
)

// BillCreatedNotice is the operator-facing confirmation of a successful commit.
const BillCreatedNotice = "bill created successfully"
