// Shared fakes for the use-case tests. The saved-game store fake is the
// real in-memory store; words and completions are tiny hand-rolled
// implementations.

package play

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
	"github.com/Ruckus000/WrathWord-sub001/internal/store"
)

type fakeWords struct {
	answers []string
	allowed []string
}

func (f *fakeWords) Answers(length int) []string {
	var out []string
	for _, w := range f.answers {
		if len(w) == length {
			out = append(out, w)
		}
	}
	return out
}

func (f *fakeWords) IsValidGuess(word string, length int) bool {
	word = strings.ToLower(word)
	for _, w := range append(append([]string{}, f.answers...), f.allowed...) {
		if w == word && len(w) == length {
			return true
		}
	}
	return false
}

func (f *fakeWords) AnswerCount(length int) int { return len(f.Answers(length)) }

type fakeTracker struct {
	done map[string]bool
}

func newFakeTracker() *fakeTracker { return &fakeTracker{done: map[string]bool{}} }

func key(length, maxRows int, dateISO string) string {
	return fmt.Sprintf("%d|%d|%s", length, maxRows, dateISO)
}

func (f *fakeTracker) IsDailyCompleted(_ context.Context, length, maxRows int, dateISO string) (bool, error) {
	return f.done[key(length, maxRows, dateISO)], nil
}

func (f *fakeTracker) MarkDailyCompleted(_ context.Context, length, maxRows int, dateISO string) error {
	f.done[key(length, maxRows, dateISO)] = true
	return nil
}

func (f *fakeTracker) CompletedDates(_ context.Context, length int) ([]string, error) {
	var out []string
	for k, v := range f.done {
		if !v {
			continue
		}
		var l, r int
		var d string
		if _, err := fmt.Sscanf(k, "%d|%d|%s", &l, &r, &d); err == nil && l == length {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeTracker) ClearCompletion(_ context.Context, length, maxRows int, dateISO string) error {
	delete(f.done, key(length, maxRows, dateISO))
	return nil
}

// brokenStore fails every operation, for the fail-safe paths.
type brokenStore struct{}

var errBroken = errors.New("store broken")

func (brokenStore) Save(context.Context, game.SavedGame) error    { return errBroken }
func (brokenStore) Load(context.Context) (*game.SavedGame, error) { return nil, errBroken }
func (brokenStore) Clear(context.Context) error                   { return errBroken }
func (brokenStore) HasSavedGame(context.Context) (bool, error)    { return false, errBroken }

func testDeps() (Deps, *store.Memory, *fakeTracker) {
	mem := store.NewMemory()
	tr := newFakeTracker()
	w := &fakeWords{
		answers: []string{"crane", "slate", "hello", "grove", "able", "bold", "banner", "garden"},
		allowed: []string{"trace", "brine", "stare"},
	}
	return Deps{Words: w, Store: mem, Completions: tr}, mem, tr
}

func dailyCfg(t *testing.T, date string) game.Config {
	t.Helper()
	cfg, err := game.NewConfig(5, 6, game.ModeDaily, date)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}
