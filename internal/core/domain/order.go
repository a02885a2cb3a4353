package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrderLine struct {
	Item     string
	Quantity int
}

// Order is a list of lines priced against the latest stock records.
// Line order is the manifest order.
type Order []OrderLine

// NewOrder builds an Order from a name->quantity map, lines sorted by name.
func NewOrder(quantities map[string]int) Order {
	names := make([]string, 0, len(quantities))
	for name := range quantities {
		names = append(names, name)
	}
	slices.Sort(names)

	order := make(Order, 0, len(names))
	for _, name := range names {
		order = append(order, OrderLine{Item: name, Quantity: quantities[name]})
	}
	return order
}

// Quote is a priced order manifest.
type Quote struct {
	ID        string
	Items     []string
	USD       decimal.Decimal
	BRL       decimal.Decimal
	CreatedAt time.Time
}
