// Package score computes the final game score.
package score

// Defaults used by the game flow.
const (
	DefaultBase           = 1000
	DefaultPenaltyPerHint = 50
)

// Compute returns base minus elapsed seconds minus hint penalties,
// floored at zero.
func Compute(base, elapsedSec, hintsUsed, penaltyPerHint int) int {
	s := base - elapsedSec - hintsUsed*penaltyPerHint
	if s < 0 {
		return 0
	}
	return s
}
