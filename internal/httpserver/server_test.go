package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ruckus000/WrathWord-sub001/internal/play"
	"github.com/Ruckus000/WrathWord-sub001/internal/store"
	"github.com/Ruckus000/WrathWord-sub001/internal/words"
)

type memTracker struct {
	done map[string]bool
}

func (m *memTracker) key(length, maxRows int, dateISO string) string {
	return fmt.Sprintf("%d|%d|%s", length, maxRows, dateISO)
}

func (m *memTracker) IsDailyCompleted(_ context.Context, length, maxRows int, dateISO string) (bool, error) {
	return m.done[m.key(length, maxRows, dateISO)], nil
}

func (m *memTracker) MarkDailyCompleted(_ context.Context, length, maxRows int, dateISO string) error {
	m.done[m.key(length, maxRows, dateISO)] = true
	return nil
}

func (m *memTracker) CompletedDates(_ context.Context, length int) ([]string, error) {
	var out []string
	for k, v := range m.done {
		var l, r int
		var d string
		if _, err := fmt.Sscanf(k, "%d|%d|%s", &l, &r, &d); err == nil && v && l == length {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memTracker) ClearCompletion(_ context.Context, length, maxRows int, dateISO string) error {
	delete(m.done, m.key(length, maxRows, dateISO))
	return nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	wp, err := words.Load("")
	if err != nil {
		t.Fatal(err)
	}
	stores := map[string]*store.Memory{}
	trackers := map[string]*memTracker{}
	return NewWith(wp,
		func(slot string) play.StateStore {
			if stores[slot] == nil {
				stores[slot] = store.NewMemory()
			}
			return stores[slot]
		},
		func(slot string) play.CompletionTracker {
			if trackers[slot] == nil {
				trackers[slot] = &memTracker{done: map[string]bool{}}
			}
			return trackers[slot]
		},
	)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: slotCookie, Value: "test-slot"})
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return rec, out
}

func TestHealth(t *testing.T) {
	rec, out := doJSON(t, newTestServer(t), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || out["ok"] != true {
		t.Errorf("health = %d %v", rec.Code, out)
	}
}

func TestStartAndGuessFlow(t *testing.T) {
	srv := newTestServer(t)

	rec, out := doJSON(t, srv, http.MethodPost, "/game/start",
		`{"length":5,"maxRows":6,"mode":"free","dateISO":"2025-01-15"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("start status = %d", rec.Code)
	}
	if out["outcome"] != "new_game" {
		t.Fatalf("start outcome = %v, want new_game", out["outcome"])
	}
	game := out["game"].(map[string]any)
	if game["status"] != "playing" || game["answer"] != nil {
		t.Errorf("fresh game view leaks state: %v", game)
	}

	rec, out = doJSON(t, srv, http.MethodPost, "/game/guess", `{"word":"zzzzz"}`)
	if rec.Code != http.StatusOK || out["outcome"] != "not_in_word_list" {
		t.Errorf("unknown word: %d %v", rec.Code, out["outcome"])
	}

	rec, out = doJSON(t, srv, http.MethodPost, "/game/guess", `{"word":"crane"}`)
	if rec.Code != http.StatusOK || out["outcome"] != "ok" {
		t.Fatalf("valid guess: %d %v", rec.Code, out["outcome"])
	}

	// The same config restores with the recorded guess.
	_, out = doJSON(t, srv, http.MethodPost, "/game/start",
		`{"length":5,"maxRows":6,"mode":"free","dateISO":"2025-01-15"}`)
	if out["outcome"] != "restored" {
		t.Fatalf("restart outcome = %v, want restored", out["outcome"])
	}
	game = out["game"].(map[string]any)
	if rows := game["rows"].([]any); len(rows) != 1 || rows[0] != "crane" {
		t.Errorf("restored rows = %v, want [crane]", game["rows"])
	}
}

func TestGuessWithoutGame(t *testing.T) {
	rec, out := doJSON(t, newTestServer(t), http.MethodPost, "/game/guess", `{"word":"crane"}`)
	if rec.Code != http.StatusNotFound || out["error"] != "no_active_game" {
		t.Errorf("guess without game: %d %v", rec.Code, out)
	}
}

func TestHintEndpoint(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/game/start",
		`{"length":5,"maxRows":6,"mode":"free","dateISO":"2025-01-15"}`)

	rec, out := doJSON(t, srv, http.MethodPost, "/game/hint", "")
	if rec.Code != http.StatusOK || out["outcome"] != "ok" {
		t.Fatalf("hint: %d %v", rec.Code, out["outcome"])
	}
	hint := out["hint"].(map[string]any)
	if hint["col"].(float64) != 0 {
		t.Errorf("hint col = %v, want 0 on a fresh game", hint["col"])
	}

	_, out = doJSON(t, srv, http.MethodPost, "/game/hint", "")
	if out["outcome"] != "already_used" {
		t.Errorf("second hint outcome = %v, want already_used", out["outcome"])
	}
}

func TestAbandonAndCompletionGating(t *testing.T) {
	srv := newTestServer(t)
	doJSON(t, srv, http.MethodPost, "/game/start",
		`{"length":5,"maxRows":6,"mode":"daily","dateISO":"2025-01-15"}`)
	doJSON(t, srv, http.MethodPost, "/game/guess", `{"word":"slate"}`)

	rec, out := doJSON(t, srv, http.MethodPost, "/game/abandon", "")
	if rec.Code != http.StatusOK || out["existed"] != true {
		t.Fatalf("abandon: %d %v", rec.Code, out)
	}
	if out["guessCount"].(float64) != 1 {
		t.Errorf("abandon guessCount = %v, want 1", out["guessCount"])
	}

	_, out = doJSON(t, srv, http.MethodPost, "/game/start",
		`{"length":5,"maxRows":6,"mode":"daily","dateISO":"2025-01-15"}`)
	if out["outcome"] != "already_completed" {
		t.Errorf("restart after abandon = %v, want already_completed", out["outcome"])
	}

	_, out = doJSON(t, srv, http.MethodGet, "/daily/completed?length=5", "")
	dates := out["dates"].([]any)
	if len(dates) != 1 || dates[0] != "2025-01-15" {
		t.Errorf("completed dates = %v, want [2025-01-15]", dates)
	}
}
