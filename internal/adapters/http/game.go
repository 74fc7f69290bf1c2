package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/game"
)

// Game-mode endpoints. The handler keeps one active session; this is a
// single-player local tool, so the latest new-game wins.

type gameStateResp struct {
	Board      [9][9]uint8 `json:"board"`
	Fixed      [9][9]bool  `json:"fixed"`
	Difficulty string      `json:"difficulty"`
	HintsUsed  int         `json:"hintsUsed"`
	ElapsedSec int         `json:"elapsedSec"`
	Error      string      `json:"error,omitempty"`
}

func stateOf(s *game.Session) gameStateResp {
	return gameStateResp{
		Board:      s.User.Values,
		Fixed:      s.Puzzle.Fixed,
		Difficulty: s.Difficulty.String(),
		HintsUsed:  s.HintsUsed,
		ElapsedSec: s.ElapsedSec(),
	}
}

func (h *Handler) withSession(w http.ResponseWriter, fn func(s *game.Session)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil {
		writeJSON(w, http.StatusConflict, errResp{"no active game, POST /api/game/new first"})
		return
	}
	fn(h.session)
}

type gameNewReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

func (h *Handler) handleGameNew(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req gameNewReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errResp{"invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{err.Error()})
		return
	}
	h.Log.Debug("new game",
		"difficulty", diff.String(),
		"seed", seed,
		"givens", p.Board.FilledCells(),
		"attempts", st.Attempts,
	)
	h.mu.Lock()
	h.session = game.NewSession(p)
	resp := stateOf(h.session)
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

type gameMoveReq struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

type gameMoveResp struct {
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Completed bool               `json:"completed"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleGameMove(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req gameMoveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{"invalid JSON: " + err.Error()})
		return
	}
	h.withSession(w, func(s *game.Session) {
		if err := s.Set(req.Row, req.Col, req.Value); err != nil {
			writeJSON(w, http.StatusBadRequest, gameMoveResp{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, gameMoveResp{
			Conflicts: s.Conflicts(),
			Completed: s.Completed(),
		})
	})
}

type gameUndoResp struct {
	Undone bool        `json:"undone"`
	Move   domain.Move `json:"move"`
}

func (h *Handler) handleGameUndo(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	h.withSession(w, func(s *game.Session) {
		m, ok := s.Undo()
		writeJSON(w, http.StatusOK, gameUndoResp{Undone: ok, Move: m})
	})
}

func (h *Handler) handleGameReset(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	h.withSession(w, func(s *game.Session) {
		s.Reset()
		writeJSON(w, http.StatusOK, stateOf(s))
	})
}

type gameHintResp struct {
	Found     bool  `json:"found"`
	Row       int   `json:"row"`
	Col       int   `json:"col"`
	Value     uint8 `json:"value"`
	HintsUsed int   `json:"hintsUsed"`
}

func (h *Handler) handleGameHint(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	h.withSession(w, func(s *game.Session) {
		cell, v, ok := s.Hint()
		writeJSON(w, http.StatusOK, gameHintResp{
			Found:     ok,
			Row:       cell.Row,
			Col:       cell.Col,
			Value:     v,
			HintsUsed: s.HintsUsed,
		})
	})
}

type gameCheckReq struct {
	Name string `json:"name,omitempty"`
}

type gameCheckResp struct {
	Filled    bool               `json:"filled"`
	Completed bool               `json:"completed"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Score     int                `json:"score,omitempty"`
	Recorded  bool               `json:"recorded"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleGameCheck(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req gameCheckReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, errResp{"invalid JSON: " + err.Error()})
		return
	}
	h.withSession(w, func(s *game.Session) {
		resp := gameCheckResp{
			Filled:    s.User.FilledCells() == 81,
			Completed: s.Completed(),
			Conflicts: s.Conflicts(),
		}
		if resp.Completed {
			rec, _ := s.Finish(req.Name)
			resp.Score = rec.Score
			if req.Name != "" {
				if err := h.UC.AddScore(r.Context(), rec); err != nil {
					h.Log.Warn("leaderboard save failed", "err", err)
				} else {
					resp.Recorded = true
				}
			}
		}
		writeJSON(w, http.StatusOK, resp)
	})
}
