// Package config provides YAML-based configuration and mock data loading
// for royale, with ROYALE_* environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-royale/internal/battle"
	"github.com/vovakirdan/tui-royale/internal/clock"
	"github.com/vovakirdan/tui-royale/internal/deck"
)

// Config is the top-level application configuration.
type Config struct {
	Battle BattleConfig `yaml:"battle" envPrefix:"BATTLE_"`
	UI     UIConfig     `yaml:"ui" envPrefix:"UI_"`
	Log    LogConfig    `yaml:"log" envPrefix:"LOG_"`
	Data   DataConfig   `yaml:"data" envPrefix:"DATA_"`
}

// BattleConfig defines battle pacing.
type BattleConfig struct {
	MaxElixir    int           `yaml:"max_elixir" env:"MAX_ELIXIR"`
	StartElixir  int           `yaml:"start_elixir" env:"START_ELIXIR"`
	MatchSeconds int           `yaml:"match_seconds" env:"MATCH_SECONDS"`
	ElixirEvery  time.Duration `yaml:"elixir_every" env:"ELIXIR_EVERY"`
	TimerEvery   time.Duration `yaml:"timer_every" env:"TIMER_EVERY"`
	HandSize     int           `yaml:"hand_size" env:"HAND_SIZE"`
}

// Session converts the pacing settings into a battle configuration.
func (b BattleConfig) Session() battle.Config {
	return battle.Config{
		Clock: clock.Config{
			MaxResource:   b.MaxElixir,
			StartResource: b.StartElixir,
			MatchSeconds:  b.MatchSeconds,
		},
		ResourceEvery: b.ElixirEvery,
		TimerEvery:    b.TimerEvery,
		HandSize:      b.HandSize,
	}
}

// UIConfig defines terminal host parameters.
type UIConfig struct {
	TickRate int `yaml:"tick_rate" env:"TICK_RATE"` // Frames per second of the host loop
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"` // debug, info, warn, error
}

// DataConfig points at the catalog and profile sources.
type DataConfig struct {
	CatalogPath string `yaml:"catalog" env:"CATALOG"`
	ProfilePath string `yaml:"profile" env:"PROFILE"`
	DBPath      string `yaml:"db" env:"DB"`
}

// Validate checks that the configuration can drive a battle and the host.
func (c Config) Validate() error {
	if err := c.Battle.Session().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.UI.TickRate < 1 {
		return fmt.Errorf("config: tick rate %d, want >= 1", c.UI.TickRate)
	}
	return nil
}

// Player is the mock player summary shown on the home screen.
type Player struct {
	Name       string `yaml:"name"`
	Level      int    `yaml:"level"`
	Trophies   int    `yaml:"trophies"`
	Experience int    `yaml:"experience"`
	Clan       string `yaml:"clan"`
	Gems       int    `yaml:"gems"`
	Gold       int    `yaml:"gold"`
}

// Profile is the player's data: summary plus deck presets.
type Profile struct {
	Player Player        `yaml:"player"`
	Decks  []deck.Preset `yaml:"decks"`
}
