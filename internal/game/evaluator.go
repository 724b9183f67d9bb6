// internal/game/evaluator.go
//
// Guess scoring via the classic two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count the remaining (non-exact) answer letters.
//
// Pass 2:
//   - For each non-exact guess letter: if unconsumed occurrences of that
//     letter remain in the answer, mark Present and consume one;
//     otherwise mark Absent.
//
// The ordering makes exact matches always win over off-position matches,
// and caps Present marks for a repeated guess letter at the number of
// unconsumed answer occurrences. Answer HELLO vs guess LLLAA scores
// [present absent correct absent absent]: the third L matches exactly,
// leaving one L for the first guessed L and none for the second.

package game

import "strings"

// Evaluate scores guess against answer, case-insensitively. The caller
// guarantees equal lengths; a mismatched guess scores all-Absent.
func Evaluate(answer, guess string) Feedback {
	answer = strings.ToLower(answer)
	guess = strings.ToLower(guess)

	n := len(guess)
	tiles := make([]TileState, n)
	if len(answer) != n {
		return Feedback{tiles: tiles}
	}

	remaining := make(map[byte]int, n)
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			tiles[i] = Correct
		} else {
			remaining[answer[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if tiles[i] == Correct {
			continue
		}
		if remaining[guess[i]] > 0 {
			tiles[i] = Present
			remaining[guess[i]]--
		} else {
			tiles[i] = Absent
		}
	}
	return Feedback{tiles: tiles}
}
