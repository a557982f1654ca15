package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	billingServices "github.com/ghuser/cartshop/services/billing/application/services"
	billingdomain "github.com/ghuser/cartshop/services/billing/domain"
	"github.com/ghuser/cartshop/services/billing/domain/models"
	catalogmodels "github.com/ghuser/cartshop/services/catalog/domain/models"
	customerServices "github.com/ghuser/cartshop/services/customer/application/services"
)

var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Select a customer, add catalog items and create the bill",
	Long: `bill runs one billing session: it selects the customer, adds every
--add reference in order and commits the bill as unpaid.

Each --add takes kind:id[:quantity] where kind is job, part, inventory or
accessory. Quantity defaults to 1.`,
	Example: `  # Battery replacement plus a new battery for John Smith (total 185.00)
  shopctl bill --customer 1 --add job:2 --add part:1

  # Two cup holders with a note
  shopctl bill --customer 2 --add accessory:1:2 --notes "gift wrap"`,
	Args: cobra.NoArgs,
	RunE: runBill,
}

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "List the bill ledger",
	Args:  cobra.NoArgs,
	RunE:  runBills,
}

func init() {
	rootCmd.AddCommand(billCmd, billsCmd)

	billCmd.Flags().Int64("customer", 0, "Customer ID to bill (required)")
	billCmd.Flags().StringArray("add", nil, "Catalog reference kind:id[:quantity]; repeatable")
	billCmd.Flags().String("notes", "", "Free-text notes stored on the bill")
	_ = billCmd.MarkFlagRequired("customer")

	billsCmd.Flags().Int64("customer", 0, "Only bills for this customer")
}

// addSpec is one parsed --add reference.
type addSpec struct {
	Kind     catalogmodels.Kind
	ID       int64
	Quantity int
}

func parseAddSpec(s string) (addSpec, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return addSpec{}, fmt.Errorf("invalid --add %q: want kind:id[:quantity]", s)
	}
	kind, err := catalogmodels.ParseKind(parts[0])
	if err != nil {
		return addSpec{}, fmt.Errorf("invalid --add %q: %w", s, err)
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return addSpec{}, fmt.Errorf("invalid --add %q: bad id %q", s, parts[1])
	}
	spec := addSpec{Kind: kind, ID: id, Quantity: 1}
	if len(parts) == 3 {
		qty, err := strconv.Atoi(parts[2])
		if err != nil {
			return addSpec{}, fmt.Errorf("invalid --add %q: bad quantity %q", s, parts[2])
		}
		spec.Quantity = qty
	}
	return spec, nil
}

func runBill(cmd *cobra.Command, _ []string) error {
	customerID, _ := cmd.Flags().GetInt64("customer")
	rawAdds, _ := cmd.Flags().GetStringArray("add")
	notes, _ := cmd.Flags().GetString("notes")

	specs := make([]addSpec, 0, len(rawAdds))
	for _, raw := range rawAdds {
		spec, err := parseAddSpec(raw)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	ctx := cmd.Context()
	a, err := openShop(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	svcs, err := billingServices.New(a)
	if err != nil {
		return err
	}
	if _, err := svcs.Billing.SelectCustomer(ctx, customerID); err != nil {
		return err
	}
	for _, spec := range specs {
		if _, err := svcs.Billing.AddCatalogItem(ctx, spec.Kind, spec.ID, spec.Quantity); err != nil {
			return err
		}
	}
	bill, err := svcs.Billing.Commit(ctx, notes)
	if err != nil {
		return err
	}

	customer, err := customerServices.New(a).Customer.GetByID(ctx, bill.CustomerID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, billingdomain.BillCreatedNotice)
	fmt.Fprintf(out, "Bill %d for %s (%s)\n", bill.ID, customer.Name, bill.Date.Format("2006-01-02 15:04"))
	return printItems(out, bill)
}

func runBills(cmd *cobra.Command, _ []string) error {
	customerID, _ := cmd.Flags().GetInt64("customer")

	ctx := cmd.Context()
	a, err := openShop(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	svcs, err := billingServices.New(a)
	if err != nil {
		return err
	}
	var bills []*models.Bill
	if customerID > 0 {
		bills, err = svcs.Ledger.FindByCustomer(ctx, customerID)
	} else {
		bills, err = svcs.Ledger.List(ctx)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BILL\tCUSTOMER\tDATE\tITEMS\tTOTAL\tPAID")
	for _, b := range bills {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\t%t\n", b.ID, b.CustomerID, b.Date.Format("2006-01-02"), b.ItemCount(), b.Total.StringFixed(2), b.Paid)
	}
	return w.Flush()
}

func printItems(out io.Writer, bill *models.Bill) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tITEM\tQTY\tPRICE\tLINE TOTAL")
	for _, it := range bill.Items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", it.Type, it.Name, it.Quantity, it.Price.StringFixed(2), it.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(w, "\t\t\tTOTAL\t%s\n", bill.Total.StringFixed(2))
	if bill.Notes != "" {
		fmt.Fprintf(w, "Notes: %s\n", bill.Notes)
	}
	return w.Flush()
}
