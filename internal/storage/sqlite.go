// Package storage provides a SQLite source for the card catalog, deck
// presets and player summary. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
//
// The database is written once by `royale import` and only read afterwards;
// deck edits made during a session are never written back.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-royale/internal/catalog"
	"github.com/vovakirdan/tui-royale/internal/config"
	"github.com/vovakirdan/tui-royale/internal/deck"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			rarity TEXT NOT NULL,
			cost INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			count INTEGER NOT NULL DEFAULT 0,
			max_count INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_cards_position ON cards(position);

		CREATE TABLE IF NOT EXISTS decks (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			active INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS deck_slots (
			deck_id INTEGER NOT NULL REFERENCES decks(id) ON DELETE CASCADE,
			slot INTEGER NOT NULL,
			card_id INTEGER NOT NULL,
			PRIMARY KEY (deck_id, slot)
		);

		CREATE TABLE IF NOT EXISTS player (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			trophies INTEGER NOT NULL DEFAULT 0,
			experience INTEGER NOT NULL DEFAULT 0,
			clan TEXT NOT NULL DEFAULT '',
			gems INTEGER NOT NULL DEFAULT 0,
			gold INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ImportCatalog replaces every stored card with cards, keeping their order.
func (s *Store) ImportCatalog(ctx context.Context, cards []catalog.Card) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM cards"); err != nil {
		return fmt.Errorf("storage: cannot clear cards: %w", err)
	}
	for i, c := range cards {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards (id, position, name, category, rarity, cost, level, count, max_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			int(c.ID), i, c.Name, string(c.Category), string(c.Rarity), c.Cost, c.Level, c.Count, c.MaxCount,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save card %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit cards: %w", err)
	}
	return nil
}

// Cards returns every stored card in import order.
func (s *Store) Cards(ctx context.Context) ([]catalog.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, rarity, cost, level, count, max_count
		 FROM cards
		 ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cards: %w", err)
	}
	defer rows.Close()

	var cards []catalog.Card
	for rows.Next() {
		var c catalog.Card
		var id int
		var category, rarity string
		if err := rows.Scan(&id, &c.Name, &category, &rarity, &c.Cost, &c.Level, &c.Count, &c.MaxCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan card: %w", err)
		}
		c.ID = catalog.CardID(id)
		c.Category = catalog.Category(category)
		c.Rarity = catalog.Rarity(rarity)
		cards = append(cards, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return cards, nil
}

// Catalog loads the stored cards into a validated catalog.
func (s *Store) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	cards, err := s.Cards(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.New(cards)
}

// ImportDecks replaces every stored deck with presets.
func (s *Store) ImportDecks(ctx context.Context, presets []deck.Preset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	for _, stmt := range []string{"DELETE FROM deck_slots", "DELETE FROM decks"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("storage: cannot clear decks: %w", err)
		}
	}

	for i, p := range presets {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO decks (id, position, name, active) VALUES (?, ?, ?, ?)",
			int(p.ID), i, p.Name, p.Active,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save deck %d: %w", p.ID, err)
		}
		for slot, cardID := range p.Cards {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO deck_slots (deck_id, slot, card_id) VALUES (?, ?, ?)",
				int(p.ID), slot, int(cardID),
			)
			if err != nil {
				return fmt.Errorf("storage: cannot save deck %d slot %d: %w", p.ID, slot, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit decks: %w", err)
	}
	return nil
}

// Decks returns every stored deck preset in import order.
func (s *Store) Decks(ctx context.Context) ([]deck.Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT d.id, d.name, d.active, s.card_id
		 FROM decks d
		 LEFT JOIN deck_slots s ON s.deck_id = d.id
		 ORDER BY d.position, s.slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query decks: %w", err)
	}
	defer rows.Close()

	var presets []deck.Preset
	for rows.Next() {
		var id int
		var name string
		var active bool
		var cardID sql.NullInt64
		if err := rows.Scan(&id, &name, &active, &cardID); err != nil {
			return nil, fmt.Errorf("storage: cannot scan deck: %w", err)
		}

		if len(presets) == 0 || presets[len(presets)-1].ID != deck.DeckID(id) {
			presets = append(presets, deck.Preset{ID: deck.DeckID(id), Name: name, Active: active})
		}
		if cardID.Valid {
			last := &presets[len(presets)-1]
			last.Cards = append(last.Cards, catalog.CardID(cardID.Int64))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return presets, nil
}

// ImportPlayer replaces the stored player summary.
func (s *Store) ImportPlayer(ctx context.Context, p config.Player) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO player (id, name, level, trophies, experience, clan, gems, gold)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Level, p.Trophies, p.Experience, p.Clan, p.Gems, p.Gold,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save player: %w", err)
	}
	return nil
}

// Player returns the stored player summary. ok is false if none was imported.
func (s *Store) Player(ctx context.Context) (p config.Player, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		"SELECT name, level, trophies, experience, clan, gems, gold FROM player WHERE id = 1",
	).Scan(&p.Name, &p.Level, &p.Trophies, &p.Experience, &p.Clan, &p.Gems, &p.Gold)
	if errors.Is(err, sql.ErrNoRows) {
		return config.Player{}, false, nil
	}
	if err != nil {
		return config.Player{}, false, fmt.Errorf("storage: cannot load player: %w", err)
	}
	return p, true, nil
}

// Counts reports how many cards and decks are stored.
func (s *Store) Counts(ctx context.Context) (cards, decks int, err error) {
	err = s.db.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM cards), (SELECT COUNT(*) FROM decks)",
	).Scan(&cards, &decks)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot count rows: %w", err)
	}
	return cards, decks, nil
}
