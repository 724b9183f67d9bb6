// internal/play/guess.go
//
// SubmitGuess validates a guessed word, advances the session, persists
// the new snapshot, and marks daily completion when the guess finished a
// daily game. Validation short-circuits in a fixed order: game_over,
// invalid_length, incomplete, not_in_word_list.

package play

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

// SubmitOutcome tags the result of a guess submission.
type SubmitOutcome string

const (
	SubmitOK            SubmitOutcome = "ok"
	SubmitGameOver      SubmitOutcome = "game_over"
	SubmitInvalidLength SubmitOutcome = "invalid_length"
	SubmitIncomplete    SubmitOutcome = "incomplete"
	SubmitNotInWordList SubmitOutcome = "not_in_word_list"
)

// SubmitResult carries the session after the attempt. On a rejected
// guess the session is the unchanged input.
type SubmitResult struct {
	Outcome SubmitOutcome
	Session game.Session
	IsWin   bool
	IsLoss  bool
}

// SubmitGuess applies one guessed word to a session.
type SubmitGuess struct {
	Deps
}

// Run validates and applies word to s.
func (uc SubmitGuess) Run(ctx context.Context, s game.Session, word string) (SubmitResult, error) {
	res := SubmitResult{Session: s}
	switch {
	case s.Status() != game.StatusPlaying:
		res.Outcome = SubmitGameOver
		return res, nil
	case len(word) != s.Config().Length():
		res.Outcome = SubmitInvalidLength
		return res, nil
	case strings.ContainsAny(word, " \t"):
		// A row that still holds blanks has not been fully typed.
		res.Outcome = SubmitIncomplete
		return res, nil
	case !uc.Words.IsValidGuess(word, s.Config().Length()):
		res.Outcome = SubmitNotInWordList
		return res, nil
	}

	next, err := s.SubmitGuess(word)
	if err != nil {
		res.Outcome = SubmitGameOver
		return res, nil
	}
	if err := uc.Store.Save(ctx, next.Snapshot()); err != nil {
		return SubmitResult{}, fmt.Errorf("persist guess: %w", err)
	}

	cfg := next.Config()
	if next.Status() != game.StatusPlaying && cfg.Mode() == game.ModeDaily {
		if err := uc.Completions.MarkDailyCompleted(ctx, cfg.Length(), cfg.MaxRows(), cfg.DateISO()); err != nil {
			return SubmitResult{}, fmt.Errorf("mark completion: %w", err)
		}
	}

	return SubmitResult{
		Outcome: SubmitOK,
		Session: next,
		IsWin:   next.Status() == game.StatusWon,
		IsLoss:  next.Status() == game.StatusLost,
	}, nil
}
