package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrRecordNotFound indicates no catalog record of the requested kind has the given ID.
	ErrRecordNotFound = errors.New("catalog record not found")

	// ErrUnknownKind indicates a kind name other than job, part, inventory or accessory.
	ErrUnknownKind = errors.New("unknown catalog kind")

	ErrInvalidJob           = errors.New("invalid job")
	ErrInvalidPart          = errors.New("invalid part")
	ErrInvalidInventoryItem = errors.New("invalid inventory item")
	ErrInvalidAccessory     = errors.New("invalid accessory")
)
