package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rl1809/storekeeper/internal/core/domain"
	"github.com/rl1809/storekeeper/internal/port"
)

var ErrEmptyOrder = errors.New("empty order")

// StoreService serializes access to one store so it can back concurrent handlers.
type StoreService struct {
	mu     sync.RWMutex
	store  *domain.Store
	logger *slog.Logger
}

func NewStoreService(store *domain.Store, logger *slog.Logger) *StoreService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreService{
		store:  store,
		logger: logger,
	}
}

// Seed appends every snapshot the source returns for this store.
func (s *StoreService) Seed(ctx context.Context, src port.SnapshotSource) (int, error) {
	snapshots, err := src.LoadSnapshots(ctx, s.store.Name())
	if err != nil {
		return 0, fmt.Errorf("load snapshots: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range snapshots {
		s.store.AddInventory(inv)
	}

	s.logger.Info("seeded store", "store", s.store.Name(), "snapshots", len(snapshots))
	return len(snapshots), nil
}

type StoreInfo struct {
	Name      string
	Address   string
	Type      string
	Snapshots int
}

func (s *StoreService) Info() StoreInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreInfo{
		Name:      s.store.Name(),
		Address:   s.store.Address(),
		Type:      s.store.Type(),
		Snapshots: len(s.store.InventoryRecord()),
	}
}

func (s *StoreService) AddInventory(inv *domain.Inventory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.AddInventory(inv)
}

// StockRecord is a stock check result with the snapshot it came from.
type StockRecord struct {
	Item     string
	Record   domain.Item
	Snapshot *domain.Inventory
}

func (s *StoreService) StockCheck(item string) (StockRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, err := s.store.Stock(item)
	if err != nil {
		return StockRecord{}, fmt.Errorf("stock check: %w", err)
	}
	record, _ := inv.Item(item)
	return StockRecord{Item: item, Record: record, Snapshot: inv}, nil
}

func (s *StoreService) FindInventory(item string) []*domain.Inventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.FindInventory(item)
}

func (s *StoreService) AmountSold(item string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sold, err := s.store.AmountSold(item)
	if err != nil {
		return 0, fmt.Errorf("amount sold: %w", err)
	}
	return sold, nil
}

func (s *StoreService) Quote(order domain.Order) (domain.Quote, error) {
	if len(order) == 0 {
		return domain.Quote{}, ErrEmptyOrder
	}

	s.mu.RLock()
	quote, err := s.store.Quote(order)
	s.mu.RUnlock()
	if err != nil {
		return domain.Quote{}, fmt.Errorf("quote: %w", err)
	}

	s.logger.Debug("priced order", "quote", quote.ID, "usd", quote.USD.String(), "brl", quote.BRL.String())
	return quote, nil
}
