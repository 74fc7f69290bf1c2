// Package httpadapter exposes the engine as a JSON API. The solver-mode
// endpoints are stateless; the game-mode endpoints in game.go operate on
// one server-held session.
package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/game"
	"github.com/Shailsharma2604/Sudoku-Game/internal/solver"
	"github.com/Shailsharma2604/Sudoku-Game/internal/usecase"
)

type Handler struct {
	UC  *usecase.Service
	Log *slog.Logger

	mu      sync.Mutex // guards session; net/http serves concurrently
	session *game.Session
}

func New(uc *usecase.Service, log *slog.Logger) *Handler {
	return &Handler{UC: uc, Log: log}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/leaderboard", h.handleLeaderboard)
	mux.HandleFunc("/api/game/new", h.handleGameNew)
	mux.HandleFunc("/api/game/move", h.handleGameMove)
	mux.HandleFunc("/api/game/undo", h.handleGameUndo)
	mux.HandleFunc("/api/game/reset", h.handleGameReset)
	mux.HandleFunc("/api/game/hint", h.handleGameHint)
	mux.HandleFunc("/api/game/check", h.handleGameCheck)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResp struct {
	Error string `json:"error"`
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{"method not allowed"})
		return false
	}
	return true
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board"`
	Solution   [9][9]uint8  `json:"solution,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Attempts   int          `json:"attempts,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	h.Log.Debug("generate",
		"difficulty", diff.String(),
		"givens", p.Board.FilledCells(),
		"attempts", st.Attempts,
		"dur", st.Duration.Round(time.Millisecond),
	)
	writeJSON(w, http.StatusOK, generateResp{
		Board:      p.Board,
		Solution:   p.Solution,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Attempts:   st.Attempts,
	})
}

// ---- Solve ----

type solveReq struct {
	Board [9][9]uint8 `json:"board"`
}
type solveResp struct {
	Board      [9][9]uint8 `json:"board,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in := &domain.Board{Values: req.Board}
	out, st, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		// unsolvable is a normal answer for this endpoint; a given
		// outside 1..9 is bad input
		status := http.StatusUnprocessableEntity
		if errors.Is(err, solver.ErrInvalidGiven) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{Board: out.Values, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateReq struct {
	Board [9][9]uint8 `json:"board"`
}
type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &domain.Board{Values: req.Board})
	if err != nil {
		// the validator only errors on out-of-range cell values
		writeJSON(w, http.StatusBadRequest, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint (logical, solver mode) ----

type hintReq struct {
	Board   [9][9]uint8 `json:"board"`
	MaxTier string      `json:"maxTier,omitempty"`
}
type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func parseTier(s string) domain.StrategyTier {
	switch s {
	case "pairs":
		return domain.StrategyPairs
	case "advanced":
		return domain.StrategyAdvanced
	default:
		return domain.StrategySingles
	}
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Values: req.Board}
	hh, ok, err := h.UC.Hint(r.Context(), b, parseTier(req.MaxTier))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Leaderboard ----

type leaderboardResp struct {
	Records []domain.ScoreRecord `json:"records"`
	Error   string               `json:"error,omitempty"`
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, errResp{"method not allowed"})
		return
	}
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}
	recs, err := h.UC.TopScores(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, leaderboardResp{Error: err.Error()})
		return
	}
	if recs == nil {
		recs = []domain.ScoreRecord{}
	}
	writeJSON(w, http.StatusOK, leaderboardResp{Records: recs})
}
