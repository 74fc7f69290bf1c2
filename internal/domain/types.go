package domain

// Board holds current values and which cells are fixed givens.
// Zero means empty.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// FilledCells counts non-empty cells.
func (b *Board) FilledCells() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Move records a single user edit so it can be undone.
type Move struct {
	Row  int   `json:"row"`
	Col  int   `json:"col"`
	Prev uint8 `json:"prev"`
}

// Hint describes a strategy suggestion for the UI.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle pairs a carved board with the full solution it was derived from.
// Non-zero cells of Board are the fixed givens.
type Puzzle struct {
	Seed       int64       `json:"seed,omitempty"`
	Difficulty Difficulty  `json:"difficulty,omitempty"`
	Board      Board       `json:"board"`
	Solution   [9][9]uint8 `json:"solution,omitempty"`
	CreatedAt  int64       `json:"createdAt,omitempty"`
}

// ScoreRecord is one leaderboard row. Difficulty is stored as its
// lowercase name so the record file stays readable.
type ScoreRecord struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	TimeSec    int    `json:"time"`
	Difficulty string `json:"difficulty"`
	PlayedAt   int64  `json:"playedAt,omitempty"`
}
