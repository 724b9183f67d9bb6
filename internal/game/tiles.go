// internal/game/tiles.go
//
// Tile-level value types for the WrathWord engine.
// Defines:
//   - TileState: per-letter evaluation result (absent/present/correct),
//     totally ordered so callers can track the best state seen per letter.
//   - Feedback: immutable per-position evaluation of one guess.

package game

import (
	"encoding/json"
	"fmt"
)

// TileState is the evaluation result for a single letter of a guess.
// Values are ordered: Absent < Present < Correct.
type TileState int

const (
	Absent TileState = iota
	Present
	Correct
)

// String returns the wire name of the state.
func (t TileState) String() string {
	switch t {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Correct:
		return "correct"
	}
	return fmt.Sprintf("TileState(%d)", int(t))
}

// MaxTile returns the higher-precedence of two states. Keyboard trackers
// use it so a letter never downgrades from correct back to present.
func MaxTile(a, b TileState) TileState {
	if a > b {
		return a
	}
	return b
}

// MarshalJSON encodes the state as its wire name.
func (t TileState) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes "absent", "present" or "correct".
func (t *TileState) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case "absent":
		*t = Absent
	case "present":
		*t = Present
	case "correct":
		*t = Correct
	default:
		return fmt.Errorf("unknown tile state %q", s)
	}
	return nil
}

// Feedback is the per-position evaluation of a single guess, one tile per
// letter. It is immutable after construction; the accessors copy so no
// caller can reach the backing storage.
type Feedback struct {
	tiles []TileState
}

// NewFeedback copies tiles into a Feedback value.
func NewFeedback(tiles []TileState) Feedback {
	cp := make([]TileState, len(tiles))
	copy(cp, tiles)
	return Feedback{tiles: cp}
}

// Len returns the number of positions.
func (f Feedback) Len() int { return len(f.tiles) }

// At returns the state at position i.
func (f Feedback) At(i int) TileState { return f.tiles[i] }

// Tiles returns a copy of the per-position states.
func (f Feedback) Tiles() []TileState {
	cp := make([]TileState, len(f.tiles))
	copy(cp, f.tiles)
	return cp
}

// IsWin reports whether every position is Correct.
func (f Feedback) IsWin() bool {
	if len(f.tiles) == 0 {
		return false
	}
	for _, t := range f.tiles {
		if t != Correct {
			return false
		}
	}
	return true
}
