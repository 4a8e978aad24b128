package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

//go:embed defaults/profile.yaml
var defaultProfileYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Battle: BattleConfig{
			MaxElixir:    10,
			StartElixir:  10,
			MatchSeconds: 180,
			ElixirEvery:  2800 * time.Millisecond,
			TimerEvery:   time.Second,
			HandSize:     4,
		},
		UI: UIConfig{
			TickRate: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a data file.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "config":
		return defaultConfigYAML
	case "catalog":
		return defaultCatalogYAML
	case "profile":
		return defaultProfileYAML
	default:
		return nil
	}
}
