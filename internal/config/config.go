package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	World   WorldConfig   `toml:"world"`
	Demo    DemoConfig    `toml:"demo"`
	Logging LoggingConfig `toml:"logging"`
}

type WorldConfig struct {
	EntityCapacity int `toml:"entity_capacity"` // presize hint, not a limit
}

type DemoConfig struct {
	SpawnCount int    `toml:"spawn_count"`
	Blueprints string `toml:"blueprints"`  // yaml prefab file, empty = none
	ScriptsDir string `toml:"scripts_dir"` // lua systems, empty = none
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML over the defaults. name is only used in errors.
func Parse(data []byte, name string) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", name, err)
	}
	if cfg.Demo.SpawnCount < 0 {
		return nil, fmt.Errorf("parse config %s: demo.spawn_count must be >= 0, got %d", name, cfg.Demo.SpawnCount)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		World: WorldConfig{
			EntityCapacity: 1024,
		},
		Demo: DemoConfig{
			SpawnCount: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
