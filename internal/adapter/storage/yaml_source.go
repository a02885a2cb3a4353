package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rl1809/storekeeper/internal/core/domain"
)

const dateLayout = "2006-01-02"

type snapshotFile struct {
	Snapshots []snapshotEntry `yaml:"snapshots"`
}

type snapshotEntry struct {
	ID    string               `yaml:"id"`
	Date  string               `yaml:"date"`
	Items map[string]itemEntry `yaml:"items"`
}

type itemEntry struct {
	Quantity int    `yaml:"quantity"`
	Cost     string `yaml:"cost"`
}

// YAMLSource reads snapshots from a fixture file. The file holds a single
// store's history; the store name passed to LoadSnapshots is not consulted.
type YAMLSource struct {
	path string
}

func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

func (y *YAMLSource) LoadSnapshots(ctx context.Context, store string) ([]*domain.Inventory, error) {
	data, err := os.ReadFile(y.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshots: %w", err)
	}
	return ParseSnapshots(data)
}

func ParseSnapshots(data []byte) ([]*domain.Inventory, error) {
	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode snapshots: %w", err)
	}

	snapshots := make([]*domain.Inventory, 0, len(file.Snapshots))
	for i, entry := range file.Snapshots {
		date, err := time.Parse(dateLayout, entry.Date)
		if err != nil {
			return nil, fmt.Errorf("snapshot %d: date: %w", i, err)
		}

		inv := domain.NewInventory(date)
		if entry.ID != "" {
			inv = domain.NewInventoryWithID(entry.ID, date)
		}
		for name, it := range entry.Items {
			cost, err := decimal.NewFromString(it.Cost)
			if err != nil {
				return nil, fmt.Errorf("snapshot %d: %s cost: %w", i, name, err)
			}
			inv.RecordItem(name, domain.Item{Quantity: it.Quantity, Cost: cost})
		}
		snapshots = append(snapshots, inv)
	}
	return snapshots, nil
}
