// internal/play/play.go
//
// Orchestration layer for the WrathWord engine.
//
// The use cases in this package coordinate the game core with three
// narrow collaborators: a word-list provider, a saved-game store and a
// daily-completion tracker. Collaborators are passed in explicitly; the
// use cases hold no hidden state and are trivially unit-testable with
// fakes.
//
// Error discipline: operation failures players can cause (wrong length,
// unknown word, game already over, ...) are tagged outcomes on the
// result, never errors. An error return always means infrastructure
// trouble (the store or tracker failed), with one deliberate exception:
// a saved game that fails to load is logged and treated as absent, so a
// corrupt save can never keep a player from playing.

package play

import (
	"context"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

// WordProvider serves candidate answers and validates guesses.
type WordProvider interface {
	Answers(length int) []string
	IsValidGuess(word string, length int) bool
	AnswerCount(length int) int
}

// StateStore persists at most one saved game per player. Load returns
// (nil, nil) when no usable save exists; implementations swallow corrupt
// state rather than surfacing it.
type StateStore interface {
	Save(ctx context.Context, g game.SavedGame) error
	Load(ctx context.Context) (*game.SavedGame, error)
	Clear(ctx context.Context) error
	HasSavedGame(ctx context.Context) (bool, error)
}

// CompletionTracker records finished or abandoned daily puzzles. The
// parameter order is (length, maxRows, dateISO) throughout.
type CompletionTracker interface {
	IsDailyCompleted(ctx context.Context, length, maxRows int, dateISO string) (bool, error)
	MarkDailyCompleted(ctx context.Context, length, maxRows int, dateISO string) error
	CompletedDates(ctx context.Context, length int) ([]string, error)
	ClearCompletion(ctx context.Context, length, maxRows int, dateISO string) error
}

// Deps bundles the collaborators shared by every use case.
type Deps struct {
	Words       WordProvider
	Store       StateStore
	Completions CompletionTracker
}
