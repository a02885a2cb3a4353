package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storekeeper/internal/core/domain"
)

// Mock SnapshotSource
type mockSource struct {
	snapshots []*domain.Inventory
	err       error
	store     string
}

func (m *mockSource) LoadSnapshots(ctx context.Context, store string) ([]*domain.Inventory, error) {
	m.store = store
	return m.snapshots, m.err
}

func snapshot(date string, items map[string]domain.Item) *domain.Inventory {
	d, _ := time.Parse("2006-01-02", date)
	inv := domain.NewInventory(d)
	inv.RecordItems(items)
	return inv
}

func hammerSnapshots() []*domain.Inventory {
	return []*domain.Inventory{
		snapshot("2017-09-16", map[string]domain.Item{
			"hammer": {Quantity: 20, Cost: decimal.NewFromInt(20)},
		}),
		snapshot("2017-09-18", map[string]domain.Item{
			"mitre saw": {Quantity: 10, Cost: decimal.NewFromInt(409)},
			"hammer":    {Quantity: 15, Cost: decimal.NewFromInt(20)},
		}),
	}
}

func newTestService(t *testing.T) (*StoreService, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewStoreService(domain.NewStore("Ace", "834 2nd St", "Hardware"), logger), &buf
}

func TestSeed_Success(t *testing.T) {
	svc, logs := newTestService(t)
	src := &mockSource{snapshots: hammerSnapshots()}

	n, err := svc.Seed(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 snapshots, got %d", n)
	}
	if src.store != "Ace" {
		t.Errorf("expected source to be asked for Ace, got %s", src.store)
	}
	if svc.Info().Snapshots != 2 {
		t.Errorf("expected 2 snapshots in store, got %d", svc.Info().Snapshots)
	}
	if !bytes.Contains(logs.Bytes(), []byte("seeded store")) {
		t.Errorf("expected seed log line, got: %s", logs.String())
	}
}

func TestSeed_SourceError(t *testing.T) {
	svc, _ := newTestService(t)
	boom := errors.New("connection refused")

	_, err := svc.Seed(context.Background(), &mockSource{err: boom})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped source error, got: %v", err)
	}
	if svc.Info().Snapshots != 0 {
		t.Errorf("expected empty store, got %d snapshots", svc.Info().Snapshots)
	}
}

func TestStockCheck(t *testing.T) {
	svc, _ := newTestService(t)
	snaps := hammerSnapshots()
	for _, inv := range snaps {
		svc.AddInventory(inv)
	}

	rec, err := svc.StockCheck("hammer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Record.Quantity != 15 {
		t.Errorf("expected quantity 15, got %d", rec.Record.Quantity)
	}
	if rec.Snapshot != snaps[1] {
		t.Error("expected the later snapshot")
	}

	_, err = svc.StockCheck("drill")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestAmountSold(t *testing.T) {
	svc, _ := newTestService(t)
	for _, inv := range hammerSnapshots() {
		svc.AddInventory(inv)
	}

	sold, err := svc.AmountSold("hammer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sold != 5 {
		t.Errorf("expected 5, got %d", sold)
	}

	if len(svc.FindInventory("mitre saw")) != 1 {
		t.Errorf("expected mitre saw in one snapshot")
	}
}

func TestQuote(t *testing.T) {
	svc, _ := newTestService(t)
	svc.AddInventory(snapshot("2017-03-10", map[string]domain.Item{
		"miniature orc":     {Quantity: 2000, Cost: decimal.NewFromInt(20)},
		"fancy paint brush": {Quantity: 200, Cost: decimal.NewFromInt(20)},
	}))

	quote, err := svc.Quote(domain.NewOrder(map[string]int{"miniature orc": 30, "fancy paint brush": 1}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quote.USD.Equal(decimal.NewFromInt(620)) {
		t.Errorf("expected USD 620, got %s", quote.USD)
	}
	if !quote.BRL.Equal(decimal.RequireFromString("1909.60")) {
		t.Errorf("expected BRL 1909.60, got %s", quote.BRL)
	}

	if _, err := svc.Quote(nil); !errors.Is(err, ErrEmptyOrder) {
		t.Errorf("expected ErrEmptyOrder, got: %v", err)
	}
	if _, err := svc.Quote(domain.Order{{Item: "dragon", Quantity: 1}}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestConcurrentReads(t *testing.T) {
	svc, _ := newTestService(t)
	for _, inv := range hammerSnapshots() {
		svc.AddInventory(inv)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%10 == 0 {
				svc.AddInventory(snapshot("2017-09-20", map[string]domain.Item{
					"nail": {Quantity: i, Cost: decimal.NewFromInt(1)},
				}))
				return
			}
			if _, err := svc.StockCheck("hammer"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if svc.Info().Snapshots != 7 {
		t.Errorf("expected 7 snapshots, got %d", svc.Info().Snapshots)
	}
}

func TestStockCheck_RecordMatchesSnapshot(t *testing.T) {
	svc, _ := newTestService(t)
	later := snapshot("2017-09-20", map[string]domain.Item{
		"hammer": {Quantity: 7, Cost: decimal.NewFromInt(22)},
	})
	earlier := snapshot("2017-09-01", map[string]domain.Item{
		"hammer": {Quantity: 30, Cost: decimal.NewFromInt(18)},
	})
	// Added out of date order: the record must come from the snapshot returned with it.
	svc.AddInventory(later)
	svc.AddInventory(earlier)

	rec, err := svc.StockCheck("hammer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Snapshot != earlier {
		t.Error("expected the last added snapshot")
	}
	want, _ := rec.Snapshot.Item("hammer")
	if rec.Record.Quantity != want.Quantity || !rec.Record.Cost.Equal(want.Cost) {
		t.Errorf("expected record %d @ %s, got %d @ %s", want.Quantity, want.Cost, rec.Record.Quantity, rec.Record.Cost)
	}
	if rec.Record.Quantity != 30 {
		t.Errorf("expected quantity 30, got %d", rec.Record.Quantity)
	}
}
