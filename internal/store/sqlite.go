// internal/store/sqlite.go
//
// SQLite-backed saved-game store. Each player slot owns at most one saved
// game, held as a JSON snapshot in the saved_games table. Missing and
// corrupt rows both load as nil: the engine fails toward playability, and
// the orchestration layer treats nil as "no saved game".

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

// SQLite persists one saved game per player slot.
type SQLite struct {
	db   *sql.DB
	slot string
}

// NewSQLite binds a store to a player slot.
func NewSQLite(db *sql.DB, slot string) *SQLite {
	return &SQLite{db: db, slot: slot}
}

// Save upserts the snapshot for the slot.
func (s *SQLite) Save(ctx context.Context, g game.SavedGame) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal saved game: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO saved_games(slot, state, updated_at)
        VALUES(?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(slot) DO UPDATE SET state=excluded.state, updated_at=CURRENT_TIMESTAMP`,
		s.slot, string(data),
	)
	return err
}

// Load returns the slot's saved game, or nil when there is none. A row
// that no longer unmarshals is discarded and loads as nil.
func (s *SQLite) Load(ctx context.Context) (*game.SavedGame, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM saved_games WHERE slot=?`, s.slot,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var g game.SavedGame
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		log.Warn().Err(err).Str("slot", s.slot).Msg("discarding corrupt saved game")
		_, _ = s.db.ExecContext(ctx, `DELETE FROM saved_games WHERE slot=?`, s.slot)
		return nil, nil
	}
	return &g, nil
}

// Clear removes the slot's saved game if present.
func (s *SQLite) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM saved_games WHERE slot=?`, s.slot)
	return err
}

// HasSavedGame reports whether a saved game exists for the slot.
func (s *SQLite) HasSavedGame(ctx context.Context) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM saved_games WHERE slot=?`, s.slot,
	).Scan(&cnt)
	return cnt > 0, err
}
