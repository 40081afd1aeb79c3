// Package ranking orders scored resumes and applies threshold and top-N cuts.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// Rank returns a new slice sorted by total score, descending. The sort is
// stable: candidates with identical totals keep their input order, which keeps
// batch output deterministic.
func Rank(scored []types.ScoredResume) []types.ScoredResume {
	ranked := make([]types.ScoredResume, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score.TotalScore > ranked[j].Score.TotalScore
	})
	return ranked
}

// FilterByThreshold retains entries whose total score is at least minScore.
// Zero retains everything, since total scores are never negative.
func FilterByThreshold(scored []types.ScoredResume, minScore float64) []types.ScoredResume {
	filtered := make([]types.ScoredResume, 0, len(scored))
	for _, sr := range scored {
		if sr.Score.TotalScore >= minScore {
			filtered = append(filtered, sr)
		}
	}
	return filtered
}

// TopN returns the first n entries. When fewer than n survive, all of them
// come back; n <= 0 means no truncation.
func TopN(scored []types.ScoredResume, n int) []types.ScoredResume {
	if n <= 0 || n >= len(scored) {
		return scored
	}
	return scored[:n]
}
