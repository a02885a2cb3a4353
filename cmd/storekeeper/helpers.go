package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/rl1809/storekeeper/internal/adapter/storage"
	"github.com/rl1809/storekeeper/internal/config"
	"github.com/rl1809/storekeeper/internal/core/domain"
	"github.com/rl1809/storekeeper/internal/core/service"
	"github.com/rl1809/storekeeper/internal/logging"
	"github.com/rl1809/storekeeper/internal/port"
)

// loadConfig reads the config file. A missing file falls back to defaults
// unless the path was given explicitly.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	cfg := config.New()
	if err := cfg.Load(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logging.Init(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, nil)
	return cfg, nil
}

// openSource returns the configured snapshot source and a func releasing its connections.
func openSource(ctx context.Context, cfg config.SeedConfig) (port.SnapshotSource, func(), error) {
	switch cfg.Source {
	case "yaml":
		return storage.NewYAMLSource(cfg.Path), func() {}, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		db.SetMaxOpenConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping mysql: %w", err)
		}
		return storage.NewMySQLAdapter(db), func() { db.Close() }, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return storage.NewRedisAdapter(rdb), func() { rdb.Close() }, nil
	}
	return nil, func() {}, nil
}

func configPathGiven(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("config")
}

// newSeededService builds the configured store and loads its snapshot history.
func newSeededService(ctx context.Context, cfg *config.Config) (*service.StoreService, error) {
	logger := logging.New("store")
	store := domain.NewStore(cfg.Store.Name, cfg.Store.Address, cfg.Store.Type)
	svc := service.NewStoreService(store, logger)

	src, closeSource, err := openSource(ctx, cfg.Seed)
	if err != nil {
		return nil, err
	}
	defer closeSource()

	if src == nil {
		logger.Warn("no seed source configured, store starts empty")
		return svc, nil
	}
	if _, err := svc.Seed(ctx, src); err != nil {
		return nil, err
	}
	return svc, nil
}

// parseOrderArgs turns ITEM=QTY arguments into order lines, keeping argument order.
func parseOrderArgs(args []string) (domain.Order, error) {
	order := make(domain.Order, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid order line %q, want ITEM=QTY", arg)
		}
		qty, err := strconv.Atoi(arg[i+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", arg, err)
		}
		order = append(order, domain.OrderLine{Item: arg[:i], Quantity: qty})
	}
	return order, nil
}
