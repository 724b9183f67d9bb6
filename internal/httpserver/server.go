// internal/httpserver/server.go
//
// HTTP wiring for the WrathWord backend.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON,
//     credentials-friendly CORS).
//   - Anonymous player slots via a uuid cookie; every slot gets its own
//     saved game and completion history.
//   - Game endpoints: POST /game/start, /game/guess, /game/hint,
//     /game/abandon; GET /daily/completed.
//
// No game rules live here: handlers decode JSON, build the use case with
// slot-bound collaborators, and encode the outcome.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Ruckus000/WrathWord-sub001/internal/daily"
	"github.com/Ruckus000/WrathWord-sub001/internal/play"
	"github.com/Ruckus000/WrathWord-sub001/internal/store"
	"github.com/Ruckus000/WrathWord-sub001/internal/words"
)

const slotCookie = "ww_slot"

// StoreFactory returns the saved-game store for a player slot.
type StoreFactory func(slot string) play.StateStore

// TrackerFactory returns the completion tracker for a player slot.
type TrackerFactory func(slot string) play.CompletionTracker

// Server bundles the router, the word provider and the per-slot
// collaborator factories.
type Server struct {
	r        *chi.Mux
	words    *words.Provider
	stores   StoreFactory
	trackers TrackerFactory
}

// New constructs a Server with SQLite-backed stores and trackers.
func New(db *sql.DB, wp *words.Provider) *Server {
	return NewWith(wp,
		func(slot string) play.StateStore { return store.NewSQLite(db, slot) },
		func(slot string) play.CompletionTracker { return daily.NewTracker(db, slot) },
	)
}

// NewWith constructs a Server around explicit collaborator factories.
// Tests use it to run the full HTTP surface over in-memory fakes.
func NewWith(wp *words.Provider, stores StoreFactory, trackers TrackerFactory) *Server {
	s := &Server{r: chi.NewRouter(), words: wp, stores: stores, trackers: trackers}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wrathword","endpoints":["/health","POST /game/start","POST /game/guess","POST /game/hint","POST /game/abandon","GET /daily/completed"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/start", s.handleStart)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/game/hint", s.handleHint)
	s.r.Post("/game/abandon", s.handleAbandon)
	s.r.Get("/daily/completed", s.handleCompletedDates)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: word list counts per length
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		counts := map[int]map[string]int{}
		for _, l := range words.Lengths {
			counts[l] = map[string]int{"answers": wp.AnswerCount(l), "allowed": wp.AllowedCount(l)}
		}
		_ = json.NewEncoder(w).Encode(counts)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// deps builds slot-bound collaborators for the requesting player.
func (s *Server) deps(w http.ResponseWriter, r *http.Request) play.Deps {
	slot := s.ensureSlot(w, r)
	return play.Deps{
		Words:       s.words,
		Store:       s.stores(slot),
		Completions: s.trackers(slot),
	}
}

// ensureSlot reads the player-slot cookie, issuing a fresh uuid when the
// request carries none.
func (s *Server) ensureSlot(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(slotCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     slotCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
	return id
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
