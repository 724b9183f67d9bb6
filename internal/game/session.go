// internal/game/session.go
//
// The game session aggregate and its state machine.
//
// States: playing → won, playing → lost, playing → playing. Won and lost
// are terminal; no further guesses or hints are accepted.
//
// A Session is an immutable value: SubmitGuess and UseHint return a new
// Session and leave the receiver untouched, so a caller may keep an old
// session alive alongside its successor (the stale-daily flow depends on
// this).

package game

import (
	"errors"
	"strings"
)

// Status is the coarse session state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Cell identifies a board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Precondition errors returned by the session mutators.
var (
	ErrGameOver = errors.New("game over")
	ErrHintUsed = errors.New("hint already used")
)

// Session composes the config, the answer, the ordered guess/feedback
// history, the status and the hint state. guesses and feedback are
// parallel, append-only and index-aligned.
type Session struct {
	config       Config
	answer       string
	guesses      []string
	feedback     []Feedback
	status       Status
	hintUsed     bool
	hintedCell   *Cell
	hintedLetter string
}

// NewSession starts a fresh playing session for cfg with the given answer.
func NewSession(cfg Config, answer string) Session {
	return Session{config: cfg, answer: answer, status: StatusPlaying}
}

// Config returns the session's immutable configuration.
func (s Session) Config() Config { return s.config }

// Answer returns the target word.
func (s Session) Answer() string { return s.answer }

// Status returns playing, won or lost.
func (s Session) Status() Status { return s.status }

// GuessCount returns how many rows have been submitted.
func (s Session) GuessCount() int { return len(s.guesses) }

// Guesses returns a copy of the submitted words in submission order.
func (s Session) Guesses() []string {
	cp := make([]string, len(s.guesses))
	copy(cp, s.guesses)
	return cp
}

// FeedbackHistory returns a copy of the per-row feedback, parallel to
// Guesses.
func (s Session) FeedbackHistory() []Feedback {
	cp := make([]Feedback, len(s.feedback))
	copy(cp, s.feedback)
	return cp
}

// HintUsed reports whether the single hint has been spent.
func (s Session) HintUsed() bool { return s.hintUsed }

// HintedCell returns a copy of the hinted position, or nil.
func (s Session) HintedCell() *Cell {
	if s.hintedCell == nil {
		return nil
	}
	c := *s.hintedCell
	return &c
}

// HintedLetter returns the revealed letter, empty when no hint was used.
func (s Session) HintedLetter() string { return s.hintedLetter }

// SubmitGuess evaluates word against the answer and returns the advanced
// session. The word is recorded lowercased. Status transitions: won when
// the feedback is all-Correct, lost when the row budget is exhausted,
// otherwise still playing.
func (s Session) SubmitGuess(word string) (Session, error) {
	if s.status != StatusPlaying {
		return s, ErrGameOver
	}
	fb := Evaluate(s.answer, word)

	next := s
	next.guesses = append(append([]string(nil), s.guesses...), strings.ToLower(word))
	next.feedback = append(append([]Feedback(nil), s.feedback...), fb)
	switch {
	case fb.IsWin():
		next.status = StatusWon
	case len(next.guesses) >= s.config.maxRows:
		next.status = StatusLost
	}
	return next, nil
}

// UseHint records the hint grant. The orchestration layer computes a
// valid (cell, letter) pair via NextHint before calling this; the session
// only checks that hinting is currently legal.
func (s Session) UseHint(cell Cell, letter string) (Session, error) {
	if s.status != StatusPlaying {
		return s, ErrGameOver
	}
	if s.hintUsed {
		return s, ErrHintUsed
	}
	next := s
	next.hintUsed = true
	c := cell
	next.hintedCell = &c
	next.hintedLetter = letter
	return next, nil
}
