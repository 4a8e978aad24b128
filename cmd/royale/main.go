// royale is a terminal card-battle client: deck building plus a timed
// battle with regenerating elixir.
//
// Usage:
//
//	royale cards             - List the card collection
//	royale deck              - Show, edit or activate a deck
//	royale deck edit         - Interactive deck editor
//	royale battle            - Play a battle with the active deck
//	royale import            - Copy catalog and decks into SQLite
//	royale init              - Write the default data files to ~/.royale
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.royale, ./configs, built-in)
//	--db <path>         - Read catalog and decks from this SQLite database
//	--fps <rate>        - Host frame rate (default from config: 30)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-royale/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagFPS      int
	flagLogLevel string
)

// Resolved by the root command before any subcommand runs.
var (
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "royale",
	Short: "Royale - build a deck and battle in your terminal",
	Long: `Royale is a terminal card-battle client. Build 8-card decks from your
collection and play timed battles where elixir regenerates over time.

Available commands:
  cards    - Show the card collection
  deck     - Show, edit or activate a deck
  battle   - Start a battle with the active deck
  import   - Copy the catalog and decks into a SQLite database
  init     - Write the default data files to ~/.royale

Examples:
  royale cards --rarity Epic
  royale deck --deck 2 --edit 1=9 --use
  royale deck edit
  royale battle
  royale battle --headless --log-level debug`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Read catalog and decks from this SQLite database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(battleCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(initCmd)
}

// setup loads the configuration and applies flag overrides on top of it.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fps") {
		if flagFPS < 1 {
			return fmt.Errorf("--fps %d, want >= 1", flagFPS)
		}
		loaded.UI.TickRate = flagFPS
	}
	if flagDBPath != "" {
		loaded.Data.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}

	l, err := newLogger(os.Stderr, loaded.Log.Level)
	if err != nil {
		return err
	}
	cfg, logger = loaded, l
	return nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "royale",
		Level:           lvl,
	}), nil
}
