package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	catalogServices "github.com/ghuser/cartshop/services/catalog/application/services"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List jobs, parts, inventory and accessories",
	Example: `  # Show everything that can be billed
  shopctl catalog`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := openShop(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	listing, err := catalogServices.New(a).Catalog.Listing(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "JOBS\tID\tRATE\tEST. MIN")
	for _, j := range listing.Jobs {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", j.Description, j.ID, j.HourlyRate.StringFixed(2), j.EstimatedTime)
	}
	fmt.Fprintln(w, "\nPARTS\tID\tPRICE\tQTY\tMARKUP %\tSUPPLIER")
	for _, p := range listing.Parts {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\t%s\n", p.Name, p.ID, p.MarketPrice.StringFixed(2), p.QuantityOnHand, p.Markup.StringFixed(2), p.Supplier)
	}
	fmt.Fprintln(w, "\nINVENTORY\tID\tPRICE\tQTY\tTYPE\tFOR SALE")
	for _, i := range listing.Inventory {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\t%t\n", i.Name, i.ID, i.Price.StringFixed(2), i.QuantityOnHand, i.Type, i.ForSale)
	}
	fmt.Fprintln(w, "\nACCESSORIES\tID\tPRICE\tQTY\tSALES POINT")
	for _, acc := range listing.Accessories {
		fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%s\n", acc.Name, acc.ID, acc.Price.StringFixed(2), acc.QuantityOnHand, acc.SalesPoint)
	}
	return w.Flush()
}
