// Package game holds the per-game state: the puzzle, its solution, the
// player's grid, the undo stack and the hint counter. The engine packages
// stay stateless; a session owns exactly one game.
package game

import (
	"fmt"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/score"
	"github.com/Shailsharma2604/Sudoku-Game/internal/validator"
)

type Session struct {
	Difficulty domain.Difficulty
	Puzzle     domain.Board
	Solution   [9][9]uint8
	User       domain.Board
	HintsUsed  int
	StartedAt  time.Time

	moves []domain.Move
}

// NewSession starts a game from a generated puzzle. The user grid begins
// as a copy of the puzzle board.
func NewSession(p *domain.Puzzle) *Session {
	return &Session{
		Difficulty: p.Difficulty,
		Puzzle:     p.Board,
		Solution:   p.Solution,
		User:       p.Board,
		StartedAt:  time.Now(),
	}
}

func checkCoord(r, c int) error {
	if r < 0 || r > 8 || c < 0 || c > 8 {
		return fmt.Errorf("cell out of range: r=%d c=%d", r, c)
	}
	return nil
}

// Set writes v (0 clears) into a non-fixed cell and records the previous
// value for undo. The write is not validated against the rules; the UI
// may hold transiently conflicting states.
func (s *Session) Set(r, c int, v uint8) error {
	if err := checkCoord(r, c); err != nil {
		return err
	}
	if v > 9 {
		return fmt.Errorf("value out of range: %d", v)
	}
	if s.Puzzle.Fixed[r][c] {
		return fmt.Errorf("cell r=%d c=%d is a fixed given", r, c)
	}
	s.moves = append(s.moves, domain.Move{Row: r, Col: c, Prev: s.User.Values[r][c]})
	s.User.Values[r][c] = v
	return nil
}

// Undo reverts the latest edit. On an empty stack it reports false and
// changes nothing.
func (s *Session) Undo() (domain.Move, bool) {
	if len(s.moves) == 0 {
		return domain.Move{}, false
	}
	m := s.moves[len(s.moves)-1]
	s.moves = s.moves[:len(s.moves)-1]
	s.User.Values[m.Row][m.Col] = m.Prev
	return m, true
}

// Reset restores the user grid to the puzzle, clears the undo stack and
// restarts the clock. Hints already consumed stay counted.
func (s *Session) Reset() {
	s.User = s.Puzzle
	s.moves = nil
	s.StartedAt = time.Now()
}

// Hint fills the first empty user cell from the solution and counts it.
func (s *Session) Hint() (domain.CellCoord, uint8, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if s.User.Values[r][c] == 0 {
				v := s.Solution[r][c]
				s.moves = append(s.moves, domain.Move{Row: r, Col: c, Prev: 0})
				s.User.Values[r][c] = v
				s.HintsUsed++
				return domain.CellCoord{Row: r, Col: c}, v, true
			}
		}
	}
	return domain.CellCoord{}, 0, false
}

// Completed reports whether the board is fully filled and matches the
// generated solution exactly. Equality is the authoritative check: the
// random carve cannot promise a unique solution, so rule-validity alone
// would accept boards the game did not deal.
func (s *Session) Completed() bool {
	return s.User.Values == s.Solution
}

// Conflicts lists user-entered cells whose value collides with the rest
// of the board.
func (s *Session) Conflicts() []domain.CellCoord {
	var out []domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := s.User.Values[r][c]
			if v == 0 || s.Puzzle.Fixed[r][c] {
				continue
			}
			if !validator.Allowed(&s.User, r, c, v) {
				out = append(out, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return out
}

// ElapsedSec is the whole seconds since the game (re)started.
func (s *Session) ElapsedSec() int {
	return int(time.Since(s.StartedAt) / time.Second)
}

// Finish scores a completed game and builds its leaderboard record.
func (s *Session) Finish(name string) (domain.ScoreRecord, bool) {
	if !s.Completed() {
		return domain.ScoreRecord{}, false
	}
	elapsed := s.ElapsedSec()
	return domain.ScoreRecord{
		Name:       name,
		Score:      score.Compute(score.DefaultBase, elapsed, s.HintsUsed, score.DefaultPenaltyPerHint),
		TimeSec:    elapsed,
		Difficulty: s.Difficulty.String(),
		PlayedAt:   time.Now().Unix(),
	}, true
}
