// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"fmt"

	"github.com/caiosouza15/seufirmino-awards/models"
)

// Tally counts one category's votes. Each entry of voteNomineeIDs is one
// vote; votes for nominees outside the category are ignored.
func Tally(category models.Category, nominees []models.Nominee, voteNomineeIDs []string) models.CategoryResult {
	counts := make(map[string]int, len(nominees))
	for _, id := range voteNomineeIDs {
		counts[id]++
	}
	return TallyCounts(category, nominees, counts)
}

// TallyCounts builds a category result from per-nominee counts.
// Every nominee sharing the maximum count wins, unless nobody voted.
func TallyCounts(category models.Category, nominees []models.Nominee, counts map[string]int) models.CategoryResult {
	result := models.CategoryResult{
		ID:        category.ID,
		Name:      category.Name,
		WinnerIDs: []string{},
		Nominees:  make([]models.NomineeResult, len(nominees)),
	}

	maxVotes := 0
	for _, n := range nominees {
		c := counts[n.ID]
		result.TotalVotes += c
		if c > maxVotes {
			maxVotes = c
		}
	}

	for i, n := range nominees {
		c := counts[n.ID]
		pct := 0.0
		if result.TotalVotes > 0 {
			pct = float64(c) / float64(result.TotalVotes) * 100
		}
		winner := maxVotes > 0 && c == maxVotes
		if winner {
			result.WinnerIDs = append(result.WinnerIDs, n.ID)
		}
		result.Nominees[i] = models.NomineeResult{
			ID:           n.ID,
			Name:         n.Name,
			ImageURL:     n.ImageURL,
			TotalVotes:   c,
			Percent:      pct,
			PercentLabel: PercentLabel(pct),
			IsWinner:     winner,
		}
	}
	result.Tied = len(result.WinnerIDs) > 1

	return result
}

// PercentLabel formats a percentage with one decimal, e.g. "33.3%".
func PercentLabel(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
