// Command shopctl runs one-shot shop operations against a freshly seeded
// in-memory shop and prints the result to stdout. Logs go to stderr.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghuser/cartshop/pkg/app"
	"github.com/ghuser/cartshop/pkg/config"
	"github.com/ghuser/cartshop/pkg/logger"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Golf-cart shop point of sale from the terminal",
	Long: `shopctl works on a freshly seeded in-memory shop: the demo customers,
jobs, parts, inventory and accessories, plus one paid bill for customer 1.

Nothing is persisted between invocations.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level written to stderr (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("customer-switch", "preserve", "What happens to pending items when the customer changes (preserve, detach)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// shopConfig builds the configuration from flags. config.Load is not used
// because conf.Parse would read the process arguments.
func shopConfig(cmd *cobra.Command) *config.Config {
	level, _ := cmd.Flags().GetString("log-level")
	policy, _ := cmd.Flags().GetString("customer-switch")
	return &config.Config{
		LogLevel:             level,
		LogFormat:            "text",
		Environment:          config.EnvDevelopment,
		NodeID:               1,
		SeedSampleData:       true,
		CustomerSwitchPolicy: policy,
		ServiceName:          "shopctl",
		ServiceVersion:       version,
	}
}

// openShop builds a seeded Application. The caller must Close it.
func openShop(ctx context.Context, cmd *cobra.Command) (*app.Application, error) {
	cfg := shopConfig(cmd)
	log := logger.NewWithWriter(cfg, cmd.ErrOrStderr())
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open shop: %w", err)
	}
	return a, nil
}
