package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	billingdomain "github.com/ghuser/cartshop/services/billing/domain"
	catalogdomain "github.com/ghuser/cartshop/services/catalog/domain"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
)

func TestParseAddSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    addSpec
		wantErr bool
	}{
		{"job:2", addSpec{catalogmodels.KindJob, 2, 1}, false},
		{"part:1:3", addSpec{catalogmodels.KindPart, 1, 3}, false},
		{" Accessory:1 ", addSpec{catalogmodels.KindAccessory, 1, 1}, false},
		{"inventory:2:0", addSpec{catalogmodels.KindInventory, 2, 0}, false},
		{"job", addSpec{}, true},
		{"service:1", addSpec{}, true},
		{"part:x", addSpec{}, true},
		{"part:-1", addSpec{}, true},
		{"part:1:two", addSpec{}, true},
		{"part:1:2:3", addSpec{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAddSpec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("wantErr=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseAddSpec_UnknownKindWraps(t *testing.T) {
	_, err := parseAddSpec("service:1")
	if !errors.Is(err, catalogdomain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

// resetFlags restores flag defaults between Execute calls on the shared rootCmd.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(billCmd)
		resetFlags(customersCmd)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBillCommand(t *testing.T) {
	out, err := execute(t, "bill", "--customer", "1", "--add", "job:2", "--add", "part:1", "--notes", "rotate tires")
	if err != nil {
		t.Fatalf("bill: %v", err)
	}
	for _, want := range []string{billingdomain.BillCreatedNotice, "John Smith", "Battery Replacement", "Golf Cart Battery", "185.00", "rotate tires"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBillCommand_Rejected(t *testing.T) {
	_, err := execute(t, "bill", "--customer", "1")
	if !errors.Is(err, billingdomain.ErrNothingToBill) {
		t.Fatalf("expected ErrNothingToBill, got %v", err)
	}
}

func TestCustomersCommand(t *testing.T) {
	out, err := execute(t, "customers", "--search", "JANE")
	if err != nil {
		t.Fatalf("customers: %v", err)
	}
	if !strings.Contains(out, "Jane Doe") || strings.Contains(out, "John Smith") {
		t.Fatalf("unexpected search output:\n%s", out)
	}
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	for _, want := range []string{"Lift Kit Install", "Golf Cart Battery", "41.18", "Wheel Set - Premium", "Folding Windshield"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
