package solver

import (
	"context"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/ports"
)

// Solve fills the board by exhaustive backtracking: first empty cell in
// row-major order, candidates 1..9 ascending. The input board is not
// modified; the solved grid comes back as a new board.
func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := checkGivens(&b.Values); err != nil {
		return nil, ports.Stats{}, err
	}
	grid := b.Values
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
