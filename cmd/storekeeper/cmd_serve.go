package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/rl1809/storekeeper/internal/adapter/handler"
	"github.com/rl1809/storekeeper/internal/logging"
)

const shutdownTimeout = 5 * time.Second

var serveFlags struct {
	httpAddr string
	grpcAddr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Seed the store and serve it over HTTP and gRPC",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.httpAddr, "http-addr", "", "HTTP listen address (overrides config)")
	f.StringVar(&serveFlags.grpcAddr, "grpc-addr", "", "gRPC listen address (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(rootFlags.configPath, configPathGiven(cmd))
	if err != nil {
		return err
	}
	if serveFlags.httpAddr != "" {
		cfg.HTTP.Addr = serveFlags.httpAddr
	}
	if serveFlags.grpcAddr != "" {
		cfg.GRPC.Addr = serveFlags.grpcAddr
	}

	logger := logging.New("serve")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := newSeededService(ctx, cfg)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	health := handler.RegisterGRPC(grpcServer, handler.NewGRPCHandler(svc))

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	handler.NewHTTPHandler(svc).Routes(mux)
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: mux,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server listening", "addr", cfg.GRPC.Addr)
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP shutdown failed", "error", err)
		}
		logger.Info("HTTP server stopped")

		health.SetServingStatus(handler.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()
		logger.Info("gRPC server stopped")
		return nil
	})

	return g.Wait()
}
