package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrNoInventories   = errors.New("no inventories")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// NotFoundError reports an item that no inspected snapshot carries.
type NotFoundError struct {
	Item string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found", e.Item)
}

func (e *NotFoundError) Unwrap() error {
	return ErrItemNotFound
}
