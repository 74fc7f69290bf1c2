package generator

import (
	"context"
	"testing"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/solver"
	"github.com/Shailsharma2604/Sudoku-Game/internal/validator"
)

func checkPuzzle(t *testing.T, p *domain.Puzzle) {
	t.Helper()
	// solution must be complete and rule-valid
	sol := &domain.Board{Values: p.Solution}
	if sol.FilledCells() != 81 {
		t.Fatal("solution has empty cells")
	}
	if ok, conf, _ := validator.New().Validate(context.Background(), sol); !ok {
		t.Fatalf("solution violates the rules: %v", conf)
	}
	// every given must agree with the solution and be marked fixed
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := p.Board.Values[r][c]
			if v != 0 && v != p.Solution[r][c] {
				t.Fatalf("given at r=%d c=%d disagrees with solution", r, c)
			}
			if (v != 0) != p.Board.Fixed[r][c] {
				t.Fatalf("fixed mask wrong at r=%d c=%d", r, c)
			}
		}
	}
}

func TestRandomGenerateAllDifficulties(t *testing.T) {
	g := NewRandomGenerator()
	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"expert", domain.Expert},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			p, st, err := g.Generate(ctx, 12345, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			checkPuzzle(t, p)
			if st.Attempts > maxCarveAttempts {
				t.Fatalf("attempt cap exceeded: %d", st.Attempts)
			}
			givens := p.Board.FilledCells()
			if givens < 81-removalTarget(tc.diff) {
				t.Fatalf("removed more than the %s target: %d givens", tc.name, givens)
			}
		})
	}
}

func TestRandomGenerateEasyKeepsMoreGivensThanHard(t *testing.T) {
	g := NewRandomGenerator()
	ctx := context.Background()
	easy, hard := 0, 0
	for seed := int64(1); seed <= 8; seed++ {
		pe, _, err := g.Generate(ctx, seed, domain.Easy)
		if err != nil {
			t.Fatalf("easy seed %d: %v", seed, err)
		}
		ph, _, err := g.Generate(ctx, seed, domain.Hard)
		if err != nil {
			t.Fatalf("hard seed %d: %v", seed, err)
		}
		easy += pe.Board.FilledCells()
		hard += ph.Board.FilledCells()
	}
	if easy <= hard {
		t.Fatalf("easy puzzles should average more givens: easy=%d hard=%d", easy, hard)
	}
}

func TestRandomGenerateIsSeedDeterministic(t *testing.T) {
	g := NewRandomGenerator()
	ctx := context.Background()
	a, _, err := g.Generate(ctx, 99, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := g.Generate(ctx, 99, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if a.Board.Values != b.Board.Values || a.Solution != b.Solution {
		t.Fatal("same seed produced different puzzles")
	}
	c, _, err := g.Generate(ctx, 100, domain.Medium)
	if err != nil {
		t.Fatal(err)
	}
	if a.Solution == c.Solution {
		t.Fatal("different seeds produced the same solution")
	}
}

func TestUniqueGenerate(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	p, st, err := g.Generate(ctx, 12345, domain.Medium)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	checkPuzzle(t, p)
	givens := p.Board.FilledCells()
	if givens < 17 || givens > 81 {
		t.Fatalf("implausible givens count: %d", givens)
	}
	ok, _, _ := s.Unique(ctx, &p.Board)
	if !ok {
		t.Fatalf("carved puzzle is not unique (givens=%d attempts=%d)", givens, st.Attempts)
	}
}
