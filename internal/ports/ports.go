package ports

import (
	"context"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int           // search nodes visited
	Attempts int           // carve attempts spent (generators only)
	Duration time.Duration
}

// Solver solves a board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Scoreboard persists the ranked leaderboard.
type Scoreboard interface {
	Add(ctx context.Context, rec domain.ScoreRecord) error
	Top(ctx context.Context, n int) ([]domain.ScoreRecord, error)
}
