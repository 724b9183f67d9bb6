// internal/play/hint.go
//
// UseHint checks hint legality, asks the hint scan for the next
// unrevealed column, applies it to the session and persists. The hint
// never consumes a guess row.

package play

import (
	"context"
	"fmt"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

// HintOutcome tags the result of a hint request.
type HintOutcome string

const (
	HintOK          HintOutcome = "ok"
	HintGameOver    HintOutcome = "game_over"
	HintAlreadyUsed HintOutcome = "already_used"
	HintUnavailable HintOutcome = "no_hint_available"
)

// HintResult carries the session after the attempt and, on success, the
// granted hint.
type HintResult struct {
	Outcome HintOutcome
	Session game.Session
	Hint    game.Hint
}

// UseHint grants the single per-session hint.
type UseHint struct {
	Deps
}

// Run attempts to grant a hint for s.
func (uc UseHint) Run(ctx context.Context, s game.Session) (HintResult, error) {
	res := HintResult{Session: s}
	if s.Status() != game.StatusPlaying {
		res.Outcome = HintGameOver
		return res, nil
	}
	if s.HintUsed() {
		res.Outcome = HintAlreadyUsed
		return res, nil
	}

	h, err := game.NextHint(s.Answer(), s.GuessCount(), s.FeedbackHistory())
	if err != nil {
		res.Outcome = HintUnavailable
		return res, nil
	}
	next, err := s.UseHint(game.Cell{Row: h.Row, Col: h.Col}, h.Letter)
	if err != nil {
		res.Outcome = HintAlreadyUsed
		return res, nil
	}
	if err := uc.Store.Save(ctx, next.Snapshot()); err != nil {
		return HintResult{}, fmt.Errorf("persist hint: %w", err)
	}
	return HintResult{Outcome: HintOK, Session: next, Hint: h}, nil
}
