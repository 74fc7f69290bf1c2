package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/ports"
)

// maxCarveAttempts caps the random removal loop so repeated picks of
// already-empty cells cannot spin forever.
const maxCarveAttempts = 1000

func removalTarget(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 52
	case domain.Hard:
		return 58
	default:
		return 62 // Expert
	}
}

// RandomGenerator carves a puzzle by removing randomly picked cells from a
// full solution. It is fast and difficulty follows the removal table, but
// the resulting puzzle is not guaranteed to have a unique solution.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator { return &RandomGenerator{} }

func (g *RandomGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Cause(ctx)
	}

	puz := full
	remaining := removalTarget(diff)
	attempts := 0
	for remaining > 0 && attempts < maxCarveAttempts {
		attempts++
		r, c := rng.Intn(9), rng.Intn(9)
		if puz[r][c] != 0 {
			puz[r][c] = 0
			remaining--
		}
	}
	// Cap exhaustion leaves extra givens behind; accepted, the caller can
	// read Attempts and the filled count if it cares.

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: markFixed(&puz)},
		Solution:   full,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Attempts: attempts, Duration: time.Since(start)}, nil
}
