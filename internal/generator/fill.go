package generator

import (
	"context"
	"math/rand"
)

// fillRandom solves an empty grid into a full valid solution by random
// candidate ordering, so every call with a fresh seed yields a different
// board.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *[9][9]uint8) bool {
	var nums [9]uint8
	for i := 0; i < 9; i++ {
		nums[i] = uint8(i + 1)
	}
	var dfs func(int, int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

// allowed mirrors the row/col/box checks locally for the fill.
func allowed(b *[9][9]uint8, r, c int, v uint8) bool {
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

func markFixed(grid *[9][9]uint8) [9][9]bool {
	var fixed [9][9]bool
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			fixed[r][c] = grid[r][c] != 0
		}
	}
	return fixed
}
