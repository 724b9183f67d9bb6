// internal/play/start.go
//
// StartGame decides, in order: already-completed daily → brand-new game
// (no save, or save for different dimensions/mode) → stale daily save
// (different date; discarded silently only when untouched) → restore.
// Freshly created sessions are persisted immediately; restored and stale
// results save nothing because no state has changed.

package play

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Ruckus000/WrathWord-sub001/internal/daily"
	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

// StartOutcome tags the mutually exclusive results of StartGame.
type StartOutcome string

const (
	StartNewGame          StartOutcome = "new_game"
	StartRestored         StartOutcome = "restored"
	StartStaleGame        StartOutcome = "stale_game"
	StartAlreadyCompleted StartOutcome = "already_completed"
)

// StartResult carries the started session. For stale_game both the
// in-progress stale session and a fresh one for the requested date are
// returned; the keep-or-discard decision belongs to the caller. Session
// is nil only for already_completed.
type StartResult struct {
	Outcome StartOutcome
	Session *game.Session
	Stale   *game.Session
}

// StartGame starts, restores or flags the puzzle described by a config.
type StartGame struct {
	Deps
}

// Run executes the start decision for cfg.
func (uc StartGame) Run(ctx context.Context, cfg game.Config) (StartResult, error) {
	if cfg.Mode() == game.ModeDaily {
		done, err := uc.Completions.IsDailyCompleted(ctx, cfg.Length(), cfg.MaxRows(), cfg.DateISO())
		if err != nil {
			return StartResult{}, fmt.Errorf("check completion: %w", err)
		}
		if done {
			return StartResult{Outcome: StartAlreadyCompleted}, nil
		}
	}

	saved := uc.loadSaved(ctx)
	if saved == nil ||
		saved.Length != cfg.Length() ||
		saved.MaxRows != cfg.MaxRows() ||
		saved.Mode != cfg.Mode() {
		return uc.newGame(ctx, cfg)
	}

	if cfg.Mode() == game.ModeDaily && saved.DateISO != cfg.DateISO() {
		if len(saved.Rows) == 0 {
			// Untouched stale daily game: discard silently.
			return uc.newGame(ctx, cfg)
		}
		stale, err := game.Restore(*saved)
		if err != nil {
			log.Warn().Err(err).Msg("stale save does not replay, starting fresh")
			return uc.newGame(ctx, cfg)
		}
		fresh, err := uc.seedSession(cfg)
		if err != nil {
			return StartResult{}, err
		}
		return StartResult{Outcome: StartStaleGame, Session: &fresh, Stale: &stale}, nil
	}

	restored, err := game.Restore(*saved)
	if err != nil {
		log.Warn().Err(err).Msg("save does not replay, starting fresh")
		return uc.newGame(ctx, cfg)
	}
	return StartResult{Outcome: StartRestored, Session: &restored}, nil
}

// loadSaved fetches the saved game, mapping store trouble to "no save".
func (uc StartGame) loadSaved(ctx context.Context) *game.SavedGame {
	saved, err := uc.Store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("saved game unavailable, treating as none")
		return nil
	}
	return saved
}

// seedSession deterministically picks the answer for cfg and builds a
// fresh session around it.
func (uc StartGame) seedSession(cfg game.Config) (game.Session, error) {
	answer, err := daily.SelectWord(cfg, uc.Words.Answers(cfg.Length()))
	if err != nil {
		return game.Session{}, fmt.Errorf("select word: %w", err)
	}
	return game.NewSession(cfg, answer), nil
}

// newGame creates and immediately persists a fresh session.
func (uc StartGame) newGame(ctx context.Context, cfg game.Config) (StartResult, error) {
	s, err := uc.seedSession(cfg)
	if err != nil {
		return StartResult{}, err
	}
	if err := uc.Store.Save(ctx, s.Snapshot()); err != nil {
		return StartResult{}, fmt.Errorf("persist new game: %w", err)
	}
	return StartResult{Outcome: StartNewGame, Session: &s}, nil
}
