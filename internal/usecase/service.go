package usecase

import (
	"context"
	"errors"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/ports"
)

// Service is the engine façade the adapters talk to.
type Service struct {
	Solver     ports.Solver
	Generator  ports.Generator
	Validator  ports.Validator
	Hinter     ports.Hinter
	Scoreboard ports.Scoreboard
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, sb ports.Scoreboard) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Scoreboard: sb}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b, max)
}

// Leaderboard
func (u *Service) AddScore(ctx context.Context, rec domain.ScoreRecord) error {
	if u.Scoreboard == nil {
		return errNotConfigured
	}
	return u.Scoreboard.Add(ctx, rec)
}
func (u *Service) TopScores(ctx context.Context, n int) ([]domain.ScoreRecord, error) {
	if u.Scoreboard == nil {
		return nil, errNotConfigured
	}
	return u.Scoreboard.Top(ctx, n)
}
