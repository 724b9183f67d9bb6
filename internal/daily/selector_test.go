package daily

import (
	"testing"
	"time"

	"github.com/Ruckus000/WrathWord-sub001/internal/game"
)

func cfg(t *testing.T, length, maxRows int, mode game.Mode, date string) game.Config {
	t.Helper()
	c, err := game.NewConfig(length, maxRows, mode, date)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

var candidates = []string{"crane", "slate", "hello", "babes", "pride", "grove", "thump"}

func TestSelectWordDeterministic(t *testing.T) {
	c := cfg(t, 5, 6, game.ModeDaily, "2025-01-15")
	first, err := SelectWord(c, candidates)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		w, err := SelectWord(c, candidates)
		if err != nil {
			t.Fatal(err)
		}
		if w != first {
			t.Fatalf("call %d returned %q, first call returned %q", i, w, first)
		}
	}
}

func TestSelectWordIgnoresMode(t *testing.T) {
	d, _ := SelectWord(cfg(t, 5, 6, game.ModeDaily, "2025-01-15"), candidates)
	f, _ := SelectWord(cfg(t, 5, 6, game.ModeFree, "2025-01-15"), candidates)
	if d != f {
		t.Errorf("daily picked %q, free picked %q, mode must not affect selection", d, f)
	}
}

func TestSeedIndexInRange(t *testing.T) {
	for _, seed := range []string{"2025-01-15:5:6", "2025-01-16:5:6", "1999-12-31:4:1", ""} {
		for _, n := range []int{1, 2, 7, 5000} {
			idx := SeedIndex(seed, n)
			if idx < 0 || idx >= n {
				t.Errorf("SeedIndex(%q, %d) = %d, out of range", seed, n, idx)
			}
		}
	}
}

func TestSeedIndexVariesWithSeed(t *testing.T) {
	// Not a distribution test; just check the hash reacts to its input.
	seen := map[int]bool{}
	for _, seed := range []string{
		"2025-01-15:5:6", "2025-01-16:5:6", "2025-01-17:5:6", "2025-01-18:5:6",
		"2025-01-15:4:6", "2025-01-15:6:6", "2025-01-15:5:8",
	} {
		seen[SeedIndex(seed, 1<<20)] = true
	}
	if len(seen) < 6 {
		t.Errorf("only %d distinct indices across 7 seeds", len(seen))
	}
}

func TestSelectWordEmptyCandidates(t *testing.T) {
	if _, err := SelectWord(cfg(t, 5, 6, game.ModeDaily, "2025-01-15"), nil); err != ErrNoCandidates {
		t.Errorf("err = %v, want ErrNoCandidates", err)
	}
}

func TestDateKey(t *testing.T) {
	ts := time.Date(2025, 1, 15, 23, 30, 0, 0, time.FixedZone("UTC+5", 5*3600))
	if got := DateKey(ts); got != "2025-01-15" {
		t.Errorf("DateKey = %q, want 2025-01-15", got)
	}
}
