// internal/daily/selector.go
//
// Deterministic answer selection.
// The config's seed string (dateISO:length:maxRows) is hashed with 32-bit
// FNV-1a and stepped once through a mulberry32 generator; the resulting
// [0,1) value indexes the candidate list. The same config always lands on
// the same word, in any process on any machine — no wall clock and no OS
// randomness are involved.

package daily

import (
	"errors"
	"hash/fnv"
	"time"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

// ErrNoCandidates is returned when the candidate list is empty.
var ErrNoCandidates = errors.New("no candidate answers")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// SelectWord deterministically picks the answer for cfg from candidates.
func SelectWord(cfg game.Config, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	return candidates[SeedIndex(cfg.SeedString(), len(candidates))], nil
}

// SeedIndex maps a seed string to an index in [0, n). n must be positive.
func SeedIndex(seed string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return int(mulberry32(h.Sum32()) * float64(n))
}

// mulberry32 performs a single step of the mulberry32 generator and
// returns a value in [0, 1).
func mulberry32(state uint32) float64 {
	z := state + 0x6D2B79F5
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296.0
}
