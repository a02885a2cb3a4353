package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/rl1809/storekeeper/internal/core/domain"
	"github.com/rl1809/storekeeper/internal/core/service"
)

const ServiceName = "storekeeper.v1.StoreService"

type StockCheckRequest struct {
	Item string `json:"item"`
}

type StockCheckResponse struct {
	Item       string `json:"item"`
	Quantity   int    `json:"quantity"`
	Cost       string `json:"cost"`
	SnapshotID string `json:"snapshot_id"`
	Date       string `json:"date"`
}

type AmountSoldRequest struct {
	Item string `json:"item"`
}

type AmountSoldResponse struct {
	Item       string `json:"item"`
	AmountSold int    `json:"amount_sold"`
}

type OrderLine struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type QuoteRequest struct {
	Lines []OrderLine `json:"lines"`
}

type QuoteResponse struct {
	ID    string   `json:"id"`
	Items []string `json:"items"`
	USD   string   `json:"usd"`
	BRL   string   `json:"brl"`
}

type StoreServer interface {
	StockCheck(context.Context, *StockCheckRequest) (*StockCheckResponse, error)
	AmountSold(context.Context, *AmountSoldRequest) (*AmountSoldResponse, error)
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
}

var StoreServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StockCheck", Handler: unaryHandler("StockCheck", StoreServer.StockCheck)},
		{MethodName: "AmountSold", Handler: unaryHandler("AmountSold", StoreServer.AmountSold)},
		{MethodName: "Quote", Handler: unaryHandler("Quote", StoreServer.Quote)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storekeeper/v1/store",
}

func unaryHandler[Req, Resp any](method string, call func(StoreServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StoreServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StoreServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RegisterGRPC installs the store service and a health service reporting it as serving.
func RegisterGRPC(s *grpc.Server, h *GRPCHandler) *health.Server {
	s.RegisterService(&StoreServiceDesc, h)

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return hs
}

type GRPCHandler struct {
	storeService *service.StoreService
}

func NewGRPCHandler(storeService *service.StoreService) *GRPCHandler {
	return &GRPCHandler{storeService: storeService}
}

func (h *GRPCHandler) StockCheck(ctx context.Context, req *StockCheckRequest) (*StockCheckResponse, error) {
	if req.Item == "" {
		return nil, status.Error(codes.InvalidArgument, "missing item")
	}

	rec, err := h.storeService.StockCheck(req.Item)
	if err != nil {
		return nil, toStatus(err)
	}

	return &StockCheckResponse{
		Item:       rec.Item,
		Quantity:   rec.Record.Quantity,
		Cost:       rec.Record.Cost.String(),
		SnapshotID: rec.Snapshot.ID(),
		Date:       rec.Snapshot.Date().Format(dateLayout),
	}, nil
}

func (h *GRPCHandler) AmountSold(ctx context.Context, req *AmountSoldRequest) (*AmountSoldResponse, error) {
	if req.Item == "" {
		return nil, status.Error(codes.InvalidArgument, "missing item")
	}

	sold, err := h.storeService.AmountSold(req.Item)
	if err != nil {
		return nil, toStatus(err)
	}
	return &AmountSoldResponse{Item: req.Item, AmountSold: sold}, nil
}

func (h *GRPCHandler) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	order := make(domain.Order, 0, len(req.Lines))
	for _, line := range req.Lines {
		order = append(order, domain.OrderLine{Item: line.Item, Quantity: line.Quantity})
	}

	quote, err := h.storeService.Quote(order)
	if err != nil {
		return nil, toStatus(err)
	}

	return &QuoteResponse{
		ID:    quote.ID,
		Items: quote.Items,
		USD:   quote.USD.StringFixed(2),
		BRL:   quote.BRL.StringFixed(2),
	}, nil
}

func toStatus(err error) error {
	if errors.Is(err, domain.ErrItemNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, service.ErrEmptyOrder) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
