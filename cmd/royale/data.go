package main

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-royale/internal/app"
	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/config"
	"github.com/vovakirdan/tui-royale/internal/deck"
	"github.com/vovakirdan/tui-royale/internal/sched"
	"github.com/vovakirdan/tui-royale/internal/storage"
)

// loadData returns the catalog and the player profile. A configured
// database takes precedence over the YAML data files.
func loadData(ctx context.Context) (*catalog.Catalog, config.Profile, error) {
	if cfg.Data.DBPath != "" {
		return loadFromDB(ctx, cfg.Data.DBPath)
	}

	cat, err := config.LoadCatalog(cfg.Data.CatalogPath)
	if err != nil {
		return nil, config.Profile{}, err
	}
	profile, err := config.LoadProfile(cfg.Data.ProfilePath)
	if err != nil {
		return nil, config.Profile{}, err
	}
	logger.Debug("loaded data from yaml", "cards", cat.Len(), "decks", len(profile.Decks))
	return cat, profile, nil
}

func loadFromDB(ctx context.Context, path string) (*catalog.Catalog, config.Profile, error) {
	var profile config.Profile

	store, err := storage.Open(path)
	if err != nil {
		return nil, profile, err
	}
	defer store.Close()

	cards, decks, err := store.Counts(ctx)
	if err != nil {
		return nil, profile, err
	}
	if cards == 0 {
		return nil, profile, fmt.Errorf("database %s is empty, run 'royale import --db %s' first", path, path)
	}

	cat, err := store.Catalog(ctx)
	if err != nil {
		return nil, profile, err
	}
	if profile.Decks, err = store.Decks(ctx); err != nil {
		return nil, profile, err
	}
	player, ok, err := store.Player(ctx)
	if err != nil {
		return nil, profile, err
	}
	if !ok {
		logger.Warn("database has no player summary", "path", path)
	}
	profile.Player = player

	logger.Debug("loaded data from sqlite", "path", path, "cards", cards, "decks", decks)
	return cat, profile, nil
}

// newComposer builds a deck editor over the loaded data and returns the
// player summary alongside it.
func newComposer(ctx context.Context) (*deck.Composer, config.Player, error) {
	cat, profile, err := loadData(ctx)
	if err != nil {
		return nil, config.Player{}, err
	}
	decks, err := deck.NewCollection(cat, profile.Decks)
	if err != nil {
		return nil, config.Player{}, err
	}
	composer, err := deck.NewComposer(cat, decks)
	if err != nil {
		return nil, config.Player{}, err
	}
	return composer, profile.Player, nil
}

// newHost builds an intent host whose battles run on s.
func newHost(ctx context.Context, s sched.Scheduler) (*app.Host, config.Player, error) {
	composer, player, err := newComposer(ctx)
	if err != nil {
		return nil, config.Player{}, err
	}
	return app.NewHost(composer, s, cfg.Battle.Session(), logger), player, nil
}
