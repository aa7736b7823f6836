// Package grid captures raw cell grids from uploaded statements and turns
// them into normalized tables: locate the true header row among preamble
// rows, slice below it, and promote the header cells to unique column labels.
package grid

import (
	"strings"

	"github.com/auditlens-dev/auditlens/internal/config"
	"github.com/auditlens-dev/auditlens/internal/model"
)

// ScoreRows scores the leading rows of a grid against the header lexicon.
// A row's score is the number of lexicon keywords appearing as a
// case-insensitive substring of any of its cells, each keyword counted at
// most once per row.
func ScoreRows(g model.RawGrid, keywords []string, window int) []model.HeaderCandidate {
	limit := g.NumRows()
	if window > 0 && window < limit {
		limit = window
	}

	candidates := make([]model.HeaderCandidate, 0, limit)
	for i := 0; i < limit; i++ {
		score := 0
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			for _, cell := range g.Cells[i] {
				if strings.Contains(strings.ToLower(cell), kw) {
					score++
					break
				}
			}
		}
		candidates = append(candidates, model.HeaderCandidate{Row: i, Score: score})
	}
	return candidates
}

// LocateHeader finds the header row of a grid under the configured strategy.
// first-threshold returns the first row reaching MinMatches; best-of-window
// scans the whole window and returns the highest-scoring row, ties broken by
// smallest index. When no row reaches MinMatches the grid is assumed to have
// no preamble: row 0 is returned with found = false so the caller can
// surface a warning. This function never fails.
func LocateHeader(g model.RawGrid, hc config.HeaderConfig) (row int, found bool) {
	candidates := ScoreRows(g, hc.Keywords, hc.Window)

	switch hc.Strategy {
	case config.StrategyBestOfWindow:
		best := model.HeaderCandidate{Row: 0, Score: -1}
		for _, c := range candidates {
			if c.Score > best.Score {
				best = c
			}
		}
		if best.Score >= hc.MinMatches {
			return best.Row, true
		}
	default: // first-threshold
		for _, c := range candidates {
			if c.Score >= hc.MinMatches {
				return c.Row, true
			}
		}
	}
	return 0, false
}
