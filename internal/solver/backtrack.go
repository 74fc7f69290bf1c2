package solver

import "errors"

// ErrUnsolvable reports the normal no-solution outcome; callers treat it
// as an answer, not a failure.
var ErrUnsolvable = errors.New("board is unsolvable")

// ErrInvalidGiven reports a board cell outside the digit range [0,9].
var ErrInvalidGiven = errors.New("invalid given")

// checkGivens rejects boards whose cells fall outside [0,9] before any
// search runs, so every solver shares one input contract.
func checkGivens(b *[9][9]uint8) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] > 9 {
				return ErrInvalidGiven
			}
		}
	}
	return nil
}

// BacktrackingSolver is a straightforward recursive solver.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// isValid reports whether v may be placed at the empty cell (r,c).
// Preconditions: r,c in [0,8], v in [1,9], grid[r][c] == 0.
func isValid(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty scans row-major for the first empty cell.
func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
