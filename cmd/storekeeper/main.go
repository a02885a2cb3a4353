// storekeeper serves stock lookups, sales differences and order quotes for a
// store's inventory snapshot history.
//
// Usage:
//
//	storekeeper serve  [--config=<path>]
//	storekeeper stock  ITEM [--config=<path>]
//	storekeeper quote  ITEM=QTY... [--config=<path>] [--addr=<grpc-addr>]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootFlags struct {
	configPath string
}

var rootCmd = &cobra.Command{
	Use:   "storekeeper",
	Short: "Inventory snapshots, stock checks and order quotes for a retail store",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.configPath, "config", "storekeeper.toml", "Path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
