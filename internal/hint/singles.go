// Package hint suggests logical next steps for solver mode. Only naked
// singles are implemented; higher tiers are reserved in the enum.
package hint

import (
	"context"
	"fmt"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/validator"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single if max tier allows it.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(b, r, c); ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", v),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Strategy: domain.StrategySingles,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(b *domain.Board, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if validator.Allowed(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
