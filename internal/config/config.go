// Package config loads the storekeeper TOML configuration.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Store StoreConfig `toml:"store"`
	HTTP  HTTPConfig  `toml:"http"`
	GRPC  GRPCConfig  `toml:"grpc"`
	Seed  SeedConfig  `toml:"seed"`
	Log   LogConfig   `toml:"log"`
}

type StoreConfig struct {
	Name    string `toml:"name"`
	Address string `toml:"address"`
	Type    string `toml:"type"`
}

type HTTPConfig struct {
	Addr string `toml:"addr"`
}

type GRPCConfig struct {
	Addr string `toml:"addr"`
}

// SeedConfig selects where inventory snapshots are loaded from at startup.
type SeedConfig struct {
	Source    string `toml:"source"` // "yaml", "mysql", "redis" or "" for none
	Path      string `toml:"path"`
	MySQLDSN  string `toml:"mysql_dsn"`
	RedisAddr string `toml:"redis_addr"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		Store: StoreConfig{
			Name:    "Ace",
			Address: "834 2nd St",
			Type:    "Hardware",
		},
		HTTP: HTTPConfig{Addr: ":8080"},
		GRPC: GRPCConfig{Addr: ":50051"},
		Seed: SeedConfig{
			MySQLDSN:  "root:root@tcp(localhost:3306)/storekeeper?parseTime=true",
			RedisAddr: "localhost:6379",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load decodes the file at path over the current values.
func (c *Config) Load(path string) error {
	_, err := toml.DecodeFile(path, c)
	return err
}

func (c *Config) Validate() error {
	switch c.Seed.Source {
	case "", "mysql", "redis":
	case "yaml":
		if c.Seed.Path == "" {
			return fmt.Errorf("seed: yaml source needs a path")
		}
	default:
		return fmt.Errorf("seed: unknown source %q", c.Seed.Source)
	}
	if c.Store.Name == "" {
		return fmt.Errorf("store: name is required")
	}
	return nil
}
