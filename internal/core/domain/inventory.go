package domain

import (
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is the stock record kept for one item name in a snapshot.
type Item struct {
	Quantity int
	Cost     decimal.Decimal // unit price in USD
}

// Inventory is a dated snapshot of item records.
type Inventory struct {
	id    string
	date  time.Time
	items map[string]Item
}

func NewInventory(date time.Time) *Inventory {
	return NewInventoryWithID(uuid.NewString(), date)
}

// NewInventoryWithID is used by snapshot sources that already carry an identifier.
func NewInventoryWithID(id string, date time.Time) *Inventory {
	y, m, d := date.Date()
	return &Inventory{
		id:    id,
		date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		items: make(map[string]Item),
	}
}

func (i *Inventory) ID() string {
	return i.id
}

func (i *Inventory) Date() time.Time {
	return i.date
}

// RecordItem stores the record for name, replacing any previous one.
func (i *Inventory) RecordItem(name string, item Item) {
	i.items[name] = item
}

func (i *Inventory) RecordItems(items map[string]Item) {
	for name, item := range items {
		i.RecordItem(name, item)
	}
}

// Items returns a copy of the snapshot's records.
func (i *Inventory) Items() map[string]Item {
	return maps.Clone(i.items)
}

func (i *Inventory) Item(name string) (Item, bool) {
	item, ok := i.items[name]
	return item, ok
}

func (i *Inventory) Has(name string) bool {
	_, ok := i.items[name]
	return ok
}
