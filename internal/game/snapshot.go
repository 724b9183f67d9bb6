// internal/game/snapshot.go
//
// The persisted snapshot of a session and its replay-based restore.
// SavedGame is the only artifact that crosses the persistence boundary;
// restoring replays the hint first (hints never consume a guess row) and
// then the guesses in their original order onto a freshly built session,
// so feedback and status are always recomputed, never trusted from disk.

package game

import "fmt"

// SavedGame is the flat, serializable snapshot of a Session.
type SavedGame struct {
	Length       int           `json:"length"`
	MaxRows      int           `json:"maxRows"`
	Mode         Mode          `json:"mode"`
	DateISO      string        `json:"dateISO"`
	Answer       string        `json:"answer"`
	Rows         []string      `json:"rows"`
	Feedback     [][]TileState `json:"feedback"`
	Status       Status        `json:"status"`
	HintUsed     bool          `json:"hintUsed"`
	HintedCell   *Cell         `json:"hintedCell"`
	HintedLetter string        `json:"hintedLetter,omitempty"`
}

// Snapshot flattens the session for persistence.
func (s Session) Snapshot() SavedGame {
	fb := make([][]TileState, len(s.feedback))
	for i, f := range s.feedback {
		fb[i] = f.Tiles()
	}
	return SavedGame{
		Length:       s.config.length,
		MaxRows:      s.config.maxRows,
		Mode:         s.config.mode,
		DateISO:      s.config.dateISO,
		Answer:       s.answer,
		Rows:         s.Guesses(),
		Feedback:     fb,
		Status:       s.status,
		HintUsed:     s.hintUsed,
		HintedCell:   s.HintedCell(),
		HintedLetter: s.hintedLetter,
	}
}

// Restore rebuilds a Session by replaying a snapshot. A snapshot whose
// config, answer or rows cannot legally replay returns an error; callers
// treat that the same as having no saved game.
func Restore(saved SavedGame) (Session, error) {
	cfg, err := NewConfig(saved.Length, saved.MaxRows, saved.Mode, saved.DateISO)
	if err != nil {
		return Session{}, fmt.Errorf("restore config: %w", err)
	}
	if len(saved.Answer) != cfg.Length() {
		return Session{}, fmt.Errorf("restore: answer length %d does not match config length %d",
			len(saved.Answer), cfg.Length())
	}

	s := NewSession(cfg, saved.Answer)
	if saved.HintUsed {
		if saved.HintedCell == nil || saved.HintedLetter == "" {
			return Session{}, fmt.Errorf("restore: hint used but cell or letter missing")
		}
		if s, err = s.UseHint(*saved.HintedCell, saved.HintedLetter); err != nil {
			return Session{}, fmt.Errorf("restore hint: %w", err)
		}
	}
	for i, row := range saved.Rows {
		if s, err = s.SubmitGuess(row); err != nil {
			return Session{}, fmt.Errorf("restore guess %d: %w", i, err)
		}
	}
	return s, nil
}
