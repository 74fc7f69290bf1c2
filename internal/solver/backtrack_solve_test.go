package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/ports"
	"github.com/Shailsharma2604/Sudoku-Game/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func assertSolved(t *testing.T, out *domain.Board) {
	t.Helper()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out.Values[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
		}
	}
	ok, conf, err := validator.New().Validate(context.Background(), out)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
}

func TestBacktrackingSolveUnder1s(t *testing.T) {
	in := &domain.Board{Values: sample}
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	assertSolved(t, out)
	if in.Values != sample {
		t.Fatal("Solve mutated its input board")
	}
	if st.Duration > time.Second {
		t.Fatalf("took too long: %v (>1s)", st.Duration)
	}
	t.Logf("Solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveCompleteBoardIsIdentity(t *testing.T) {
	s := NewBacktrackingSolver()
	full, _, err := s.Solve(context.Background(), &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	again, _, err := s.Solve(context.Background(), full)
	if err != nil {
		t.Fatalf("Solve on complete board failed: %v", err)
	}
	if again.Values != full.Values {
		t.Fatal("Solve changed an already-complete board")
	}
}

func TestSolveContradictionReturnsErrUnsolvable(t *testing.T) {
	in := &domain.Board{Values: sample}
	in.Values[0][8] = 5 // duplicates the 5 already in row 0
	s := NewBacktrackingSolver()
	_, _, err := s.Solve(context.Background(), in)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}

func TestSolversRejectOutOfRangeGiven(t *testing.T) {
	solvers := []struct {
		name string
		s    ports.Solver
	}{
		{"backtrack", NewBacktrackingSolver()},
		{"dlx", NewDLXSolver()},
	}
	in := &domain.Board{Values: sample}
	in.Values[0][2] = 200
	for _, tc := range solvers {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := tc.s.Solve(context.Background(), in)
			if !errors.Is(err, ErrInvalidGiven) {
				t.Fatalf("Solve: want ErrInvalidGiven, got err=%v out=%v", err, out)
			}
			if _, _, err := tc.s.Unique(context.Background(), in); !errors.Is(err, ErrInvalidGiven) {
				t.Fatalf("Unique: want ErrInvalidGiven, got %v", err)
			}
		})
	}
}

func TestUnique(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok, _, err := s.Unique(ctx, &domain.Board{Values: sample})
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !ok {
		t.Fatal("sample puzzle should have exactly one solution")
	}

	// Emptying an entire row of a unique puzzle's givens opens up
	// multiple completions.
	multi := sample
	for c := 0; c < 9; c++ {
		multi[0][c] = 0
		multi[1][c] = 0
	}
	ok, _, err = s.Unique(ctx, &domain.Board{Values: multi})
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if ok {
		t.Fatal("under-constrained board reported as unique")
	}
}
