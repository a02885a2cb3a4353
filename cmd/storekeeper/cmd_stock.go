package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stockCmd = &cobra.Command{
	Use:   "stock ITEM",
	Short: "Show the latest stock record and amount sold for an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runStock,
}

func runStock(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(rootFlags.configPath, configPathGiven(cmd))
	if err != nil {
		return err
	}
	svc, err := newSeededService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	item := args[0]
	rec, err := svc.StockCheck(item)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Item:      %s\n", item)
	fmt.Fprintf(out, "Quantity:  %d\n", rec.Record.Quantity)
	fmt.Fprintf(out, "Cost:      %s\n", rec.Record.Cost.StringFixed(2))
	fmt.Fprintf(out, "Snapshot:  %s (%s)\n", rec.Snapshot.ID(), rec.Snapshot.Date().Format("2006-01-02"))

	if sold, err := svc.AmountSold(item); err == nil {
		fmt.Fprintf(out, "Sold:      %d across %d snapshots\n", sold, len(svc.FindInventory(item)))
	}
	return nil
}
