package words

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range Lengths {
		if p.AnswerCount(l) == 0 {
			t.Errorf("no answers for length %d", l)
		}
		if p.AllowedCount(l) < p.AnswerCount(l) {
			t.Errorf("length %d: allowed set (%d) smaller than answers (%d)",
				l, p.AllowedCount(l), p.AnswerCount(l))
		}
		for _, w := range p.Answers(l) {
			if len(w) != l {
				t.Errorf("answer %q has length %d, want %d", w, len(w), l)
			}
			if !p.IsValidGuess(w, l) {
				t.Errorf("answer %q not accepted as a guess", w)
			}
		}
	}
}

func TestIsValidGuessCaseInsensitive(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	w := p.Answers(5)[0]
	upper := make([]byte, len(w))
	for i := range w {
		upper[i] = w[i] - 'a' + 'A'
	}
	if !p.IsValidGuess(string(upper), 5) {
		t.Errorf("uppercase %q rejected", string(upper))
	}
}

func TestIsValidGuessUnknownWordAndLength(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if p.IsValidGuess("zzzzz", 5) {
		t.Error("zzzzz should not be an allowed guess")
	}
	if p.IsValidGuess("crane", 7) {
		t.Error("unsupported length should reject everything")
	}
}

func TestAnswersReturnsCopy(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	a := p.Answers(5)
	a[0] = "mutated"
	if p.Answers(5)[0] == "mutated" {
		t.Error("mutating the returned slice must not affect the provider")
	}
}

func TestLoadOverrideDirectory(t *testing.T) {
	dir := t.TempDir()
	content := "CRANE\nslate \ncat\ntoolong\nnum83\n"
	if err := os.WriteFile(filepath.Join(dir, "answers_5.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := p.Answers(5)
	if len(got) != 2 || got[0] != "crane" || got[1] != "slate" {
		t.Errorf("override answers = %v, want [crane slate]", got)
	}
	// Lengths without override files still fall back to embedded lists.
	if p.AnswerCount(4) == 0 || p.AnswerCount(6) == 0 {
		t.Error("embedded fallback missing for lengths without override files")
	}
}
