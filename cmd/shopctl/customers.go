package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	customerServices "github.com/ghuser/cartshop/services/customer/application/services"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List or search customers",
	Example: `  # All customers
  shopctl customers

  # Name, email or phone search
  shopctl customers --search jane`,
	Args: cobra.NoArgs,
	RunE: runCustomers,
}

func init() {
	rootCmd.AddCommand(customersCmd)

	customersCmd.Flags().String("search", "", "Case-insensitive name/email match or phone substring")
}

func runCustomers(cmd *cobra.Command, _ []string) error {
	term, _ := cmd.Flags().GetString("search")

	ctx := cmd.Context()
	a, err := openShop(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	customers, err := customerServices.New(a).Customer.Search(ctx, term)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\tADDRESS")
	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Email, c.Address)
	}
	return w.Flush()
}
