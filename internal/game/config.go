// internal/game/config.go
//
// Validated, immutable game configuration.
// A Config can only be built through NewConfig, so every Config in
// circulation satisfies the dimension and mode constraints. The seed
// string derived here is the sole input to deterministic word selection.

package game

import (
	"errors"
	"fmt"
)

// Mode distinguishes the tracked daily puzzle from untracked free play.
type Mode string

const (
	ModeDaily Mode = "daily"
	ModeFree  Mode = "free"
)

// Construction errors returned by NewConfig.
var (
	ErrBadLength  = errors.New("word length must be 4, 5 or 6")
	ErrBadMaxRows = errors.New("max rows must be positive")
	ErrBadMode    = errors.New("mode must be daily or free")
	ErrEmptyDate  = errors.New("date must not be empty")
)

// Config is the immutable configuration of a single puzzle.
type Config struct {
	length  int
	maxRows int
	mode    Mode
	dateISO string
}

// NewConfig validates the inputs and returns a Config.
func NewConfig(length, maxRows int, mode Mode, dateISO string) (Config, error) {
	switch {
	case length < 4 || length > 6:
		return Config{}, ErrBadLength
	case maxRows <= 0:
		return Config{}, ErrBadMaxRows
	case mode != ModeDaily && mode != ModeFree:
		return Config{}, ErrBadMode
	case dateISO == "":
		return Config{}, ErrEmptyDate
	}
	return Config{length: length, maxRows: maxRows, mode: mode, dateISO: dateISO}, nil
}

// Length returns the word length (4-6).
func (c Config) Length() int { return c.length }

// MaxRows returns the guess-row budget.
func (c Config) MaxRows() int { return c.maxRows }

// Mode returns daily or free.
func (c Config) Mode() Mode { return c.mode }

// DateISO returns the puzzle's calendar date (YYYY-MM-DD).
func (c Config) DateISO() string { return c.dateISO }

// SeedString returns the canonical seed "dateISO:length:maxRows".
// Mode is deliberately excluded so daily and free play share a word for
// the same dimensions; maxRows is deliberately included so two rooms with
// different row budgets never share a puzzle.
func (c Config) SeedString() string {
	return fmt.Sprintf("%s:%d:%d", c.dateISO, c.length, c.maxRows)
}
