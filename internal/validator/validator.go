package validator

import (
	"context"
	"fmt"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate scans rows, columns and boxes with digit bitmasks and reports
// every duplicated cell. Empty cells never conflict, so partial boards
// pass until an actual collision appears. A cell outside [0,9] is a
// contract violation and fails immediately, never a conflict.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if val := b.Values[r][c]; val > 9 {
				return false, nil, fmt.Errorf("cell value out of range at r=%d c=%d: %d", r, c, val)
			}
		}
	}
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Values[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Allowed reports whether v may stand at (r,c): it must appear nowhere
// else in the row, column, or box. The cell's own current value is
// ignored, which makes Allowed usable for re-checking a placed number.
// Preconditions: r,c in [0,8], v in [1,9].
func Allowed(b *domain.Board, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if i != c && b.Values[r][i] == v {
			return false
		}
		if i != r && b.Values[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			rr, cc := br+dr, bc+dc
			if (rr != r || cc != c) && b.Values[rr][cc] == v {
				return false
			}
		}
	}
	return true
}
