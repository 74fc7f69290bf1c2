package solver

import (
	"context"
	"errors"
	"time"

	"github.com/Shailsharma2604/Sudoku-Game/internal/domain"
	"github.com/Shailsharma2604/Sudoku-Game/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for Sudoku.
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v candidates).
// Columns: 0..80   -> cell (r,c)
//          81..161 -> row r has number v
//          162..242-> col c has number v
//          243..323-> box b has number v, b = (r/3)*3 + (c/3)
//
// The links live in flat int slices indexed by node id rather than pointer
// structs: node 0 is the head, 1..324 the column headers, the rest the
// 729*4 candidate nodes. Cover/uncover splice by index.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

const (
	dlxCols  = 324
	dlxRows  = 729
	dlxHead  = 0
	dlxNodes = 1 + dlxCols + dlxRows*4
)

type dlxMatrix struct {
	left, right [dlxNodes]int
	up, down    [dlxNodes]int
	colOf       [dlxNodes]int // node -> constraint column id
	rowOf       [dlxNodes]int // node -> candidate row id (0..728)
	size        [dlxCols]int  // uncovered nodes per column
	covered     [dlxCols]bool
	picked      []int   // candidate rows fixed by givens
	sol         [81]int // nodes chosen during search
	nodes       int     // search effort counter
}

func candidateRow(r, c, v int) int { return (r*9+c)*9 + (v - 1) }

func decodeCandidate(row int) (r, c, v int) {
	cell := row / 9
	return cell / 9, cell % 9, row%9 + 1
}

func candidateCols(r, c, v int) [4]int {
	box := (r/3)*3 + c/3
	return [4]int{
		r*9 + c,
		81 + r*9 + (v - 1),
		162 + c*9 + (v - 1),
		243 + box*9 + (v - 1),
	}
}

func newDLXMatrix() *dlxMatrix {
	m := &dlxMatrix{}
	// head <-> headers, circular
	for h := 0; h <= dlxCols; h++ {
		m.left[h] = h - 1
		m.right[h] = h + 1
		m.up[h] = h
		m.down[h] = h
		m.colOf[h] = h - 1
		m.rowOf[h] = -1
	}
	m.left[dlxHead] = dlxCols
	m.right[dlxCols] = dlxHead

	next := dlxCols + 1
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 1; v <= 9; v++ {
				row := candidateRow(r, c, v)
				first := next
				for i, col := range candidateCols(r, c, v) {
					n := next
					next++
					m.colOf[n] = col
					m.rowOf[n] = row
					// append at the bottom of the column
					h := col + 1
					m.down[n] = h
					m.up[n] = m.up[h]
					m.down[m.up[h]] = n
					m.up[h] = n
					m.size[col]++
					// horizontal circular link within the row
					if i == 0 {
						m.left[n] = n
						m.right[n] = n
					} else {
						m.left[n] = first + i - 1
						m.right[n] = first
						m.right[first+i-1] = n
						m.left[first] = n
					}
				}
			}
		}
	}
	return m
}

func (m *dlxMatrix) cover(col int) {
	h := col + 1
	m.covered[col] = true
	m.right[m.left[h]] = m.right[h]
	m.left[m.right[h]] = m.left[h]
	for i := m.down[h]; i != h; i = m.down[i] {
		for j := m.right[i]; j != i; j = m.right[j] {
			m.down[m.up[j]] = m.down[j]
			m.up[m.down[j]] = m.up[j]
			m.size[m.colOf[j]]--
		}
	}
}

func (m *dlxMatrix) uncover(col int) {
	h := col + 1
	for i := m.up[h]; i != h; i = m.up[i] {
		for j := m.left[i]; j != i; j = m.left[j] {
			m.size[m.colOf[j]]++
			m.down[m.up[j]] = j
			m.up[m.down[j]] = j
		}
	}
	m.right[m.left[h]] = h
	m.left[m.right[h]] = h
	m.covered[col] = false
}

// applyGiven fixes (r,c)=v by covering its four constraint columns.
// A column already covered means another given claims the same constraint.
func (m *dlxMatrix) applyGiven(r, c, v int) error {
	cols := candidateCols(r, c, v)
	for _, col := range cols {
		if m.covered[col] {
			return ErrUnsolvable
		}
	}
	for _, col := range cols {
		m.cover(col)
	}
	m.picked = append(m.picked, candidateRow(r, c, v))
	return nil
}

// search runs Algorithm X, stopping once limit solutions are found.
// onSolution receives the chosen candidate rows of each full solution.
func (m *dlxMatrix) search(ctx context.Context, depth, limit int, found *int, onSolution func([]int)) bool {
	if ctx.Err() != nil {
		return true
	}
	if m.right[dlxHead] == dlxHead {
		*found++
		if onSolution != nil {
			rows := make([]int, 0, len(m.picked)+depth)
			rows = append(rows, m.picked...)
			for i := 0; i < depth; i++ {
				rows = append(rows, m.rowOf[m.sol[i]])
			}
			onSolution(rows)
		}
		return *found >= limit
	}
	// smallest column first
	col := -1
	best := int(^uint(0) >> 1)
	for h := m.right[dlxHead]; h != dlxHead; h = m.right[h] {
		if m.size[m.colOf[h]] < best {
			best = m.size[m.colOf[h]]
			col = m.colOf[h]
		}
	}
	if best == 0 {
		return false
	}
	m.cover(col)
	h := col + 1
	for i := m.down[h]; i != h; i = m.down[i] {
		m.nodes++
		m.sol[depth] = i
		for j := m.right[i]; j != i; j = m.right[j] {
			m.cover(m.colOf[j])
		}
		done := m.search(ctx, depth+1, limit, found, onSolution)
		for j := m.left[i]; j != i; j = m.left[j] {
			m.uncover(m.colOf[j])
		}
		if done {
			m.uncover(col)
			return true
		}
	}
	m.uncover(col)
	return false
}

func (m *dlxMatrix) loadGivens(b *domain.Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := int(b.Values[r][c]); v > 0 {
				if v > 9 {
					return ErrInvalidGiven
				}
				if err := m.applyGiven(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	m := newDLXMatrix()
	if err := m.loadGivens(b); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	var out domain.Board
	out.Fixed = b.Fixed
	found := 0
	m.search(ctx, 0, 1, &found, func(rows []int) {
		for _, row := range rows {
			r, c, v := decodeCandidate(row)
			out.Values[r][c] = uint8(v)
		}
	})
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if found < 1 {
		return nil, st, ErrUnsolvable
	}
	return &out, st, nil
}

func (s *DLXSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	m := newDLXMatrix()
	if err := m.loadGivens(b); err != nil {
		if errors.Is(err, ErrUnsolvable) {
			return false, ports.Stats{Duration: time.Since(start)}, nil
		}
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	m.search(ctx, 0, 2, &found, nil) // stop after finding 2 solutions
	st := ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return found == 1, st, nil
}
