package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/cartshop/services/billing/domain"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPrice(t *testing.T) {
	job := catalogmodels.Job{ID: 1, Description: "Battery Replacement", HourlyRate: dec("65"), EstimatedTime: 120}
	part := catalogmodels.Part{ID: 2, Name: "Battery Pack", Cost: dec("80"), MarketPrice: dec("120")}
	inv := catalogmodels.InventoryItem{ID: 3, Name: "Headlight Kit", Type: catalogmodels.InventoryPart, Price: dec("45"), ForSale: true}
	acc := catalogmodels.Accessory{ID: 4, Name: "Cup Holder", Price: dec("12.99")}

	tests := []struct {
		name string
		rec  catalogmodels.Record
		want Priced
	}{
		{"job uses description and hourly rate", job, Priced{catalogmodels.KindJob, "Battery Replacement", dec("65"), 1}},
		{"part uses market price not cost", part, Priced{catalogmodels.KindPart, "Battery Pack", dec("120"), 2}},
		{"inventory item", inv, Priced{catalogmodels.KindInventory, "Headlight Kit", dec("45"), 3}},
		{"accessory", acc, Priced{catalogmodels.KindAccessory, "Cup Holder", dec("12.99"), 4}},
		{"job pointer", &job, Priced{catalogmodels.KindJob, "Battery Replacement", dec("65"), 1}},
		{"part pointer", &part, Priced{catalogmodels.KindPart, "Battery Pack", dec("120"), 2}},
		{"inventory pointer", &inv, Priced{catalogmodels.KindInventory, "Headlight Kit", dec("45"), 3}},
		{"accessory pointer", &acc, Priced{catalogmodels.KindAccessory, "Cup Holder", dec("12.99"), 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.rec)
			if err != nil {
				t.Fatalf("Price: %v", err)
			}
			if got.Kind != tt.want.Kind || got.Name != tt.want.Name || got.OriginalID != tt.want.OriginalID {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if !got.Price.Equal(tt.want.Price) {
				t.Fatalf("price %s, want %s", got.Price, tt.want.Price)
			}
		})
	}
}

func TestPrice_JobIgnoresEstimatedTime(t *testing.T) {
	short, _ := Price(catalogmodels.Job{HourlyRate: dec("65"), EstimatedTime: 15})
	long, _ := Price(catalogmodels.Job{HourlyRate: dec("65"), EstimatedTime: 240})
	if !short.Price.Equal(long.Price) {
		t.Fatalf("job price must not depend on estimated time: %s vs %s", short.Price, long.Price)
	}
}

func TestPrice_IsASnapshot(t *testing.T) {
	part := &catalogmodels.Part{ID: 1, Name: "Battery Pack", MarketPrice: dec("120")}
	got, _ := Price(part)

	part.Name = "Renamed"
	part.MarketPrice = dec("999")

	if got.Name != "Battery Pack" || !got.Price.Equal(dec("120")) {
		t.Fatalf("priced value followed the record: %+v", got)
	}
}

func TestPrice_Unsupported(t *testing.T) {
	var nilJob *catalogmodels.Job
	for name, rec := range map[string]catalogmodels.Record{
		"nil interface": nil,
		"nil pointer":   nilJob,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Price(rec); !errors.Is(err, domain.ErrUnsupportedRecord) {
				t.Fatalf("expected ErrUnsupportedRecord, got %v", err)
			}
		})
	}
}
