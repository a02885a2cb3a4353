package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rl1809/storekeeper/internal/core/domain"
	"github.com/rl1809/storekeeper/internal/core/service"
)

// newHardwareService returns Ace with two hammer counts and a hobby snapshot.
func newHardwareService() *service.StoreService {
	store := domain.NewStore("Ace", "834 2nd St", "Hardware")

	inv3 := domain.NewInventoryWithID("inv-3", time.Date(2017, 9, 16, 0, 0, 0, 0, time.UTC))
	inv3.RecordItem("hammer", domain.Item{Quantity: 20, Cost: decimal.NewFromInt(20)})

	inv4 := domain.NewInventoryWithID("inv-4", time.Date(2017, 9, 18, 0, 0, 0, 0, time.UTC))
	inv4.RecordItem("mitre saw", domain.Item{Quantity: 10, Cost: decimal.NewFromInt(409)})
	inv4.RecordItem("hammer", domain.Item{Quantity: 15, Cost: decimal.NewFromInt(20)})

	inv5 := domain.NewInventoryWithID("inv-5", time.Date(2017, 3, 10, 0, 0, 0, 0, time.UTC))
	inv5.RecordItem("miniature orc", domain.Item{Quantity: 2000, Cost: decimal.NewFromInt(20)})
	inv5.RecordItem("fancy paint brush", domain.Item{Quantity: 200, Cost: decimal.NewFromInt(20)})

	store.AddInventory(inv3)
	store.AddInventory(inv4)
	store.AddInventory(inv5)
	return service.NewStoreService(store, nil)
}
