package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/storekeeper/internal/adapter/handler"
	"github.com/rl1809/storekeeper/internal/core/domain"
)

const remoteTimeout = 5 * time.Second

var quoteFlags struct {
	addr string
}

var quoteCmd = &cobra.Command{
	Use:   "quote ITEM=QTY...",
	Short: "Price an order in USD and BRL",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quoteFlags.addr, "addr", "", "Price against a running server at this gRPC address instead of seeding locally")
}

type quoteResult struct {
	id    string
	items []string
	usd   string
	brl   string
}

func runQuote(cmd *cobra.Command, args []string) error {
	order, err := parseOrderArgs(args)
	if err != nil {
		return err
	}

	var res quoteResult
	if quoteFlags.addr != "" {
		res, err = quoteRemote(cmd.Context(), quoteFlags.addr, order)
	} else {
		res, err = quoteLocal(cmd, order)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Quote:  %s\n", res.id)
	fmt.Fprintf(out, "Lines:  %d\n", len(order))
	for _, name := range res.items {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintf(out, "USD:    %s\n", res.usd)
	fmt.Fprintf(out, "BRL:    %s\n", res.brl)
	return nil
}

func quoteLocal(cmd *cobra.Command, order domain.Order) (quoteResult, error) {
	cfg, err := loadConfig(rootFlags.configPath, configPathGiven(cmd))
	if err != nil {
		return quoteResult{}, err
	}
	svc, err := newSeededService(cmd.Context(), cfg)
	if err != nil {
		return quoteResult{}, err
	}

	quote, err := svc.Quote(order)
	if err != nil {
		return quoteResult{}, err
	}
	return quoteResult{
		id:    quote.ID,
		items: quote.Items,
		usd:   quote.USD.StringFixed(2),
		brl:   quote.BRL.StringFixed(2),
	}, nil
}

func quoteRemote(ctx context.Context, addr string, order domain.Order) (quoteResult, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return quoteResult{}, fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()

	req := &handler.QuoteRequest{}
	for _, line := range order {
		req.Lines = append(req.Lines, handler.OrderLine{Item: line.Item, Quantity: line.Quantity})
	}
	resp, err := handler.NewStoreClient(conn).Quote(ctx, req)
	if err != nil {
		return quoteResult{}, fmt.Errorf("remote quote: %w", err)
	}
	return quoteResult{id: resp.ID, items: resp.Items, usd: resp.USD, brl: resp.BRL}, nil
}
