// internal/play/abandon.go
//
// AbandonGame summarizes and discards whatever save exists. Abandoning a
// daily game marks it completed first, so the day's puzzle cannot be
// replayed through the abandon path; a win or loss gives the same
// guarantee. The operation never fails: collaborator trouble is logged
// and the report is returned regardless.

package play

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

// AbandonReport describes the discarded game, for callers that want to
// record what was given up. Existed is false when there was no save.
type AbandonReport struct {
	Existed    bool
	GuessCount int
	HintUsed   bool
	Mode       game.Mode
	DateISO    string
	Length     int
	MaxRows    int
}

// AbandonGame discards the current saved game, if any.
type AbandonGame struct {
	Deps
}

// Run abandons the saved game and always clears the store.
func (uc AbandonGame) Run(ctx context.Context) AbandonReport {
	var rep AbandonReport

	saved, err := uc.Store.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("abandon: saved game unavailable")
		saved = nil
	}
	if saved != nil {
		rep = AbandonReport{
			Existed:    true,
			GuessCount: len(saved.Rows),
			HintUsed:   saved.HintUsed,
			Mode:       saved.Mode,
			DateISO:    saved.DateISO,
			Length:     saved.Length,
			MaxRows:    saved.MaxRows,
		}
		if saved.Mode == game.ModeDaily {
			if err := uc.Completions.MarkDailyCompleted(ctx, saved.Length, saved.MaxRows, saved.DateISO); err != nil {
				log.Warn().Err(err).Msg("abandon: failed to mark daily completion")
			}
		}
	}

	if err := uc.Store.Clear(ctx); err != nil {
		log.Warn().Err(err).Msg("abandon: failed to clear saved game")
	}
	return rep
}
