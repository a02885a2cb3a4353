package handler

import (
	"context"

	"google.golang.org/grpc"
)

// StoreClient calls StoreService over an existing connection.
type StoreClient struct {
	cc grpc.ClientConnInterface
}

func NewStoreClient(cc grpc.ClientConnInterface) *StoreClient {
	return &StoreClient{cc: cc}
}

func (c *StoreClient) StockCheck(ctx context.Context, in *StockCheckRequest, opts ...grpc.CallOption) (*StockCheckResponse, error) {
	return invoke[StockCheckResponse](ctx, c.cc, "StockCheck", in, opts)
}

func (c *StoreClient) AmountSold(ctx context.Context, in *AmountSoldRequest, opts ...grpc.CallOption) (*AmountSoldResponse, error) {
	return invoke[AmountSoldResponse](ctx, c.cc, "AmountSold", in, opts)
}

func (c *StoreClient) Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, "Quote", in, opts)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
