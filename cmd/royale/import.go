package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-royale/internal/config"
	"github.com/vovakirdan/tui-royale/internal/deck"
	"github.com/vovakirdan/tui-royale/internal/storage"
)

const defaultDBPath = "~/.royale/royale.db"

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the catalog, decks and player into a SQLite database",
	Long: `Reads the catalog and profile YAML files (same search order as the
config) and replaces the cards, decks and player summary in the database
with them. Pass the
same --db to other commands to read from it.

Examples:
  royale import
  royale import --db ./royale.db
  royale cards --db ./royale.db`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cat, err := config.LoadCatalog(cfg.Data.CatalogPath)
	if err != nil {
		return err
	}
	profile, err := config.LoadProfile(cfg.Data.ProfilePath)
	if err != nil {
		return err
	}
	// Reject decks that would not load back.
	decks, err := deck.NewCollection(cat, profile.Decks)
	if err != nil {
		return err
	}

	path := cfg.Data.DBPath
	if path == "" {
		path = defaultDBPath
	}
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ImportCatalog(ctx, cat.All()); err != nil {
		return err
	}
	if err := store.ImportDecks(ctx, decks.Presets()); err != nil {
		return err
	}
	if err := store.ImportPlayer(ctx, profile.Player); err != nil {
		return err
	}

	cardCount, deckCount, err := store.Counts(ctx)
	if err != nil {
		return err
	}
	logger.Info("import complete", "db", path, "cards", cardCount, "decks", deckCount)
	fmt.Printf("Imported %d cards and %d decks into %s\n", cardCount, deckCount, path)
	return nil
}
