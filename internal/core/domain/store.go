package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store owns a chronological, append-only history of inventory snapshots.
type Store struct {
	name            string
	address         string
	kind            string
	inventoryRecord []*Inventory
}

func NewStore(name, address, kind string) *Store {
	return &Store{
		name:    name,
		address: address,
		kind:    kind,
	}
}

func (s *Store) Name() string    { return s.name }
func (s *Store) Address() string { return s.address }

// Type is the business category, e.g. "Hardware".
func (s *Store) Type() string { return s.kind }

func (s *Store) AddInventory(inv *Inventory) {
	s.inventoryRecord = append(s.inventoryRecord, inv)
}

// InventoryRecord returns the snapshots in the order they were added.
func (s *Store) InventoryRecord() []*Inventory {
	record := make([]*Inventory, len(s.inventoryRecord))
	copy(record, s.inventoryRecord)
	return record
}

// lastMatch resolves an item to the most recently added snapshot carrying it.
// Snapshots are scanned in insertion order and every match replaces the
// candidate, so dates play no part in the choice.
func (s *Store) lastMatch(name string) *Inventory {
	var found *Inventory
	for _, inv := range s.inventoryRecord {
		if inv.Has(name) {
			found = inv
		}
	}
	return found
}

func (s *Store) StockCheck(name string) (Item, error) {
	inv := s.lastMatch(name)
	if inv == nil {
		return Item{}, &NotFoundError{Item: name}
	}
	item, _ := inv.Item(name)
	return item, nil
}

func (s *Store) Stock(name string) (*Inventory, error) {
	inv := s.lastMatch(name)
	if inv == nil {
		return nil, &NotFoundError{Item: name}
	}
	return inv, nil
}

func (s *Store) FindInventory(name string) []*Inventory {
	var found []*Inventory
	for _, inv := range s.inventoryRecord {
		if inv.Has(name) {
			found = append(found, inv)
		}
	}
	return found
}

// AmountSold is the quantity drop between the first and last snapshots
// carrying the item. Negative when stock grew.
func (s *Store) AmountSold(name string) (int, error) {
	found := s.FindInventory(name)
	if len(found) == 0 {
		return 0, &NotFoundError{Item: name}
	}
	return s.Difference(found, name)
}

// Difference returns quantity(first) - quantity(last) for the item.
func (s *Store) Difference(inventories []*Inventory, name string) (int, error) {
	if len(inventories) == 0 {
		return 0, ErrNoInventories
	}
	first, ok := inventories[0].Item(name)
	if !ok {
		return 0, &NotFoundError{Item: name}
	}
	last, ok := inventories[len(inventories)-1].Item(name)
	if !ok {
		return 0, &NotFoundError{Item: name}
	}
	return first.Quantity - last.Quantity, nil
}

// PriceOrder totals quantity * unit cost over the order, unit costs taken
// from StockCheck, and converts the USD total to the given currency.
func (s *Store) PriceOrder(order Order, currency Currency) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range order {
		item, err := s.StockCheck(line.Item)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(item.Cost.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return Convert(total, currency)
}

func (s *Store) USOrder(order Order) (decimal.Decimal, error) {
	return s.PriceOrder(order, CurrencyUSD)
}

func (s *Store) BrazilianOrder(order Order) (decimal.Decimal, error) {
	return s.PriceOrder(order, CurrencyBRL)
}

func (s *Store) OrderItems(order Order) []string {
	items := make([]string, 0, len(order))
	for _, line := range order {
		items = append(items, line.Item)
	}
	return items
}

func (s *Store) Quote(order Order) (Quote, error) {
	usd, err := s.USOrder(order)
	if err != nil {
		return Quote{}, err
	}
	brl, err := s.BrazilianOrder(order)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		ID:        uuid.NewString(),
		Items:     s.OrderItems(order),
		USD:       usd,
		BRL:       brl,
		CreatedAt: time.Now(),
	}, nil
}
