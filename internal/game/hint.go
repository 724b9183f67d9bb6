// internal/game/hint.go
//
// Hint selection: reveal the first column that has never been marked
// Correct across the accumulated feedback. The scan is deterministic;
// no randomness is involved.

package game

import "errors"

// ErrNoHint is returned when every column has already been Correct.
var ErrNoHint = errors.New("no positions available for hint")

// Hint is a single revealed (position, letter) pair.
type Hint struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// NextHint picks the leftmost column never marked Correct in history and
// pairs it with the answer letter at that column, placed on currentRow.
func NextHint(answer string, currentRow int, history []Feedback) (Hint, error) {
	revealed := make([]bool, len(answer))
	for _, fb := range history {
		for i := 0; i < fb.Len() && i < len(revealed); i++ {
			if fb.At(i) == Correct {
				revealed[i] = true
			}
		}
	}
	for col, done := range revealed {
		if !done {
			return Hint{Row: currentRow, Col: col, Letter: string(answer[col])}, nil
		}
	}
	return Hint{}, ErrNoHint
}
