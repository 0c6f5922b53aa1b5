// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"sort"

	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/results"
)

// Results is the admin readout: every category in sort order, nominees by
// votes descending. It ignores the reveal time.
func (s *Service) Results(ctx context.Context, contestID string) ([]models.ResultRow, error) {
	if _, err := s.store.GetContest(ctx, contestID); err != nil {
		return nil, err
	}
	categories, err := s.store.ListCategories(ctx, contestID)
	if err != nil {
		return nil, err
	}

	rows := []models.ResultRow{}
	for _, c := range categories {
		nominees, err := s.store.ListNominees(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		votes, err := s.store.VoteNomineeIDs(ctx, contestID, c.ID)
		if err != nil {
			return nil, err
		}

		tally := results.Tally(c, nominees, votes)
		sort.SliceStable(tally.Nominees, func(i, j int) bool {
			return tally.Nominees[i].TotalVotes > tally.Nominees[j].TotalVotes
		})
		for _, n := range tally.Nominees {
			rows = append(rows, models.ResultRow{
				CategoryID:   c.ID,
				Category:     c.Name,
				NomineeID:    n.ID,
				Nominee:      n.Name,
				Votes:        n.TotalVotes,
				Percent:      n.Percent,
				PercentLabel: n.PercentLabel,
			})
		}
	}
	return rows, nil
}
