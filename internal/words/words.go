// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load, per supported length (4-6), an answer list and an
//     allowed-guess set (answers are always allowed).
//   - Fall back to the embedded defaults in assets when no override
//     directory is configured.
//   - Serve fast lookups for guess validation.
//
// Override layout (dir passed to Load, typically from WORDS_DIR):
//   answers_4.txt / allowed_4.txt ... one word per line, any case.
//
// Constraints:
//   • Words are normalized to lowercase and filtered to exactly-L ASCII
//     letters; anything else on a line is dropped.
//   • The Provider is built once at startup and passed into the use
//     cases; there is no package-level singleton.

package words

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/Ruckus000/WrathWord-sub001/assets"
)

// Lengths are the supported word lengths.
var Lengths = []int{4, 5, 6}

// Provider serves per-length answer lists and allowed-guess sets.
type Provider struct {
	answers map[int][]string
	allowed map[int]map[string]struct{}
}

// Load builds a Provider. For each supported length it reads
// answers_L.txt and allowed_L.txt from dir when dir is non-empty,
// falling back to the embedded defaults for any file that is absent.
func Load(dir string) (*Provider, error) {
	p := &Provider{
		answers: make(map[int][]string, len(Lengths)),
		allowed: make(map[int]map[string]struct{}, len(Lengths)),
	}
	for _, length := range Lengths {
		ans, err := loadList(dir, fmt.Sprintf("answers_%d.txt", length), length, assets.AnswersList)
		if err != nil {
			return nil, fmt.Errorf("answers for length %d: %w", length, err)
		}
		if len(ans) == 0 {
			return nil, fmt.Errorf("answers for length %d: list is empty", length)
		}
		extra, err := loadList(dir, fmt.Sprintf("allowed_%d.txt", length), length, assets.AllowedList)
		if err != nil {
			return nil, fmt.Errorf("allowed for length %d: %w", length, err)
		}

		p.answers[length] = ans
		p.allowed[length] = lo.SliceToMap(append(extra, ans...), func(w string) (string, struct{}) {
			return w, struct{}{}
		})
	}
	return p, nil
}

// loadList reads one word list, preferring the override file in dir.
func loadList(dir, name string, length int, embedded func(int) ([]string, error)) ([]string, error) {
	if dir != "" {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return readWordFile(path, length)
		}
	}
	list, err := embedded(length)
	if err != nil {
		return nil, err
	}
	return normalize(list, length), nil
}

// readWordFile loads one word per line, lowercased and length-filtered.
func readWordFile(path string, length int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return normalize(out, length), sc.Err()
}

// normalize lowercases and keeps only valid exactly-length words.
func normalize(list []string, length int) []string {
	return lo.FilterMap(list, func(line string, _ int) (string, bool) {
		w := strings.TrimSpace(strings.ToLower(line))
		return w, len(w) == length && isAlpha(w)
	})
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns a copy of the answer list for a length. The list is
// empty for unsupported lengths.
func (p *Provider) Answers(length int) []string {
	return slices.Clone(p.answers[length])
}

// IsValidGuess reports whether word is an allowed guess for the length.
// The check is case-insensitive.
func (p *Provider) IsValidGuess(word string, length int) bool {
	set, ok := p.allowed[length]
	if !ok {
		return false
	}
	_, ok = set[strings.ToLower(word)]
	return ok
}

// AnswerCount returns the number of candidate answers for a length.
func (p *Provider) AnswerCount(length int) int {
	return len(p.answers[length])
}

// AllowedCount returns the size of the allowed-guess set for a length.
func (p *Provider) AllowedCount(length int) int {
	return len(p.allowed[length])
}
