package models

import (
	"fmt"
	"strings"

	"github.com/ghuser/cartshop/services/catalog/domain"
)

// Kind names one of the four catalog collections.
type Kind string

const (
	KindJob       Kind = "job"
	KindPart      Kind = "part"
	KindInventory Kind = "inventory"
	KindAccessory Kind = "accessory"
)

// Kinds lists every catalog kind in display order.
var Kinds = []Kind{KindJob, KindPart, KindInventory, KindAccessory}

// ParseKind accepts a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindJob, KindPart, KindInventory, KindAccessory:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownKind, s)
}

func (k Kind) String() string { return string(k) }

// Record is a catalog entry that can be put on a bill. The set of
// implementations is closed: Job, Part, InventoryItem and Accessory.
type Record interface {
	RecordID() int64
	record()
}

func (j Job) RecordID() int64           { return j.ID }
func (p Part) RecordID() int64          { return p.ID }
func (i InventoryItem) RecordID() int64 { return i.ID }
func (a Accessory) RecordID() int64     { return a.ID }

func (Job) record()           {}
func (Part) record()          {}
func (InventoryItem) record() {}
func (Accessory) record()     {}
