// internal/httpserver/routes.go
//
// JSON handlers for the game endpoints. The answer is only revealed in
// responses once a session is over; everything else in the view mirrors
// the saved snapshot.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Ruckus000/WrathWord-sub001/internal/daily"
	"github.com/Ruckus000/WrathWord-sub001/internal/game"
	"github.com/Ruckus000/WrathWord-sub001/internal/play"
)

// sessionView is the client-facing projection of a session.
type sessionView struct {
	Length       int                `json:"length"`
	MaxRows      int                `json:"maxRows"`
	Mode         game.Mode          `json:"mode"`
	DateISO      string             `json:"dateISO"`
	Rows         []string           `json:"rows"`
	Feedback     [][]game.TileState `json:"feedback"`
	Status       game.Status        `json:"status"`
	HintUsed     bool               `json:"hintUsed"`
	HintedCell   *game.Cell         `json:"hintedCell"`
	HintedLetter string             `json:"hintedLetter,omitempty"`
	Answer       string             `json:"answer,omitempty"`
}

// viewOf projects a session, revealing the answer only after game over.
func viewOf(s game.Session) sessionView {
	snap := s.Snapshot()
	v := sessionView{
		Length:       snap.Length,
		MaxRows:      snap.MaxRows,
		Mode:         snap.Mode,
		DateISO:      snap.DateISO,
		Rows:         snap.Rows,
		Feedback:     snap.Feedback,
		Status:       snap.Status,
		HintUsed:     snap.HintUsed,
		HintedCell:   snap.HintedCell,
		HintedLetter: snap.HintedLetter,
	}
	if snap.Status != game.StatusPlaying {
		v.Answer = snap.Answer
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// -----------------------------------------------------------------------------
// POST /game/start

type startReq struct {
	Length  int       `json:"length"`
	MaxRows int       `json:"maxRows"`
	Mode    game.Mode `json:"mode"`
	DateISO string    `json:"dateISO"`
}

type startRes struct {
	Outcome play.StartOutcome `json:"outcome"`
	Game    *sessionView      `json:"game,omitempty"`
	Stale   *sessionView      `json:"staleGame,omitempty"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	req := startReq{Length: 5, MaxRows: 6, Mode: game.ModeDaily}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}
	if req.DateISO == "" {
		req.DateISO = daily.DateKey(time.Now())
	}
	cfg, err := game.NewConfig(req.Length, req.MaxRows, req.Mode, req.DateISO)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := play.StartGame{Deps: s.deps(w, r)}.Run(r.Context(), cfg)
	if err != nil {
		log.Error().Err(err).Msg("start game failed")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}

	out := startRes{Outcome: res.Outcome}
	if res.Session != nil {
		v := viewOf(*res.Session)
		out.Game = &v
	}
	if res.Stale != nil {
		v := viewOf(*res.Stale)
		out.Stale = &v
	}
	writeJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// POST /game/guess

type guessReq struct {
	Word string `json:"word"`
}

type guessRes struct {
	Outcome play.SubmitOutcome `json:"outcome"`
	IsWin   bool               `json:"isWin"`
	IsLoss  bool               `json:"isLoss"`
	Game    sessionView        `json:"game"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	deps := s.deps(w, r)
	sess, ok := s.currentSession(w, r, deps)
	if !ok {
		return
	}

	res, err := play.SubmitGuess{Deps: deps}.Run(r.Context(), sess, req.Word)
	if err != nil {
		log.Error().Err(err).Msg("submit guess failed")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}
	writeJSON(w, http.StatusOK, guessRes{
		Outcome: res.Outcome,
		IsWin:   res.IsWin,
		IsLoss:  res.IsLoss,
		Game:    viewOf(res.Session),
	})
}

// -----------------------------------------------------------------------------
// POST /game/hint

type hintRes struct {
	Outcome play.HintOutcome `json:"outcome"`
	Hint    *game.Hint       `json:"hint,omitempty"`
	Game    sessionView      `json:"game"`
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	deps := s.deps(w, r)
	sess, ok := s.currentSession(w, r, deps)
	if !ok {
		return
	}

	res, err := play.UseHint{Deps: deps}.Run(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("use hint failed")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}
	out := hintRes{Outcome: res.Outcome, Game: viewOf(res.Session)}
	if res.Outcome == play.HintOK {
		h := res.Hint
		out.Hint = &h
	}
	writeJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// POST /game/abandon

type abandonRes struct {
	Existed    bool      `json:"existed"`
	GuessCount int       `json:"guessCount"`
	HintUsed   bool      `json:"hintUsed"`
	Mode       game.Mode `json:"mode,omitempty"`
	DateISO    string    `json:"dateISO,omitempty"`
	Length     int       `json:"length,omitempty"`
	MaxRows    int       `json:"maxRows,omitempty"`
}

func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request) {
	rep := play.AbandonGame{Deps: s.deps(w, r)}.Run(r.Context())
	writeJSON(w, http.StatusOK, abandonRes{
		Existed:    rep.Existed,
		GuessCount: rep.GuessCount,
		HintUsed:   rep.HintUsed,
		Mode:       rep.Mode,
		DateISO:    rep.DateISO,
		Length:     rep.Length,
		MaxRows:    rep.MaxRows,
	})
}

// -----------------------------------------------------------------------------
// GET /daily/completed?length=5

func (s *Server) handleCompletedDates(w http.ResponseWriter, r *http.Request) {
	length, err := strconv.Atoi(r.URL.Query().Get("length"))
	if err != nil {
		length = 5
	}
	deps := s.deps(w, r)
	dates, err := deps.Completions.CompletedDates(r.Context(), length)
	if err != nil {
		log.Error().Err(err).Msg("completed dates failed")
		writeError(w, http.StatusInternalServerError, "internal")
		return
	}
	if dates == nil {
		dates = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"length": length, "dates": dates})
}

// currentSession restores the caller's saved session, answering 404 when
// there is nothing to act on.
func (s *Server) currentSession(w http.ResponseWriter, r *http.Request, deps play.Deps) (game.Session, bool) {
	saved, err := deps.Store.Load(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("load saved game failed")
		writeError(w, http.StatusInternalServerError, "internal")
		return game.Session{}, false
	}
	if saved == nil {
		writeError(w, http.StatusNotFound, "no_active_game")
		return game.Session{}, false
	}
	sess, err := game.Restore(*saved)
	if err != nil {
		log.Warn().Err(err).Msg("saved game does not replay")
		writeError(w, http.StatusNotFound, "no_active_game")
		return game.Session{}, false
	}
	return sess, true
}
