package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/ports"
)

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// UniqueGenerator carves a puzzle while keeping exactly one solution,
// using the provided solver's solution counter. Slower than the random
// carve; selected with -generator unique.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}

func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full [9][9]uint8
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Cause(ctx)
	}

	puz := full
	positions := make([]int, 81)
	for i := range positions {
		positions[i] = i
	}
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })

	target := targetGivens(diff)
	deadline := start.Add(900 * time.Millisecond)
	givens := 81
	nodes := 0
	attempts := 0

	for _, pos := range positions {
		if givens <= target || time.Now().After(deadline) {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		attempts++
		unique, st, err := g.Solver.Unique(ctx, &domain.Board{Values: puz})
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, err
		}
		if unique {
			givens--
		} else {
			puz[r][c] = old
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      domain.Board{Values: puz, Fixed: markFixed(&puz)},
		Solution:   full,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Attempts: attempts, Duration: time.Since(start)}, nil
}
