// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/caiosouza15/seufirmino-awards/models"
)

// InsertVote appends a vote. A second vote by the same voter in the same
// category returns models.ErrDuplicateVote.
func (s *Store) InsertVote(ctx context.Context, v *models.Vote) error {
	v.ID = newID()
	v.CreatedAt = now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, contest_id, category_id, nominee_id, voter_id, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, v.ID, v.ContestID, v.CategoryID, v.NomineeID, v.VoterID, nullString(v.IPAddress), nullString(v.UserAgent), v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// HasVoted reports whether the voter has any vote in the contest.
func (s *Store) HasVoted(ctx context.Context, voterID, contestID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM votes WHERE voter_id = $1 AND contest_id = $2
	`, voterID, contestID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check votes: %w", err)
	}
	return count > 0, nil
}

// VoteNomineeIDs returns the nominee id of every vote in the category, one entry per vote.
func (s *Store) VoteNomineeIDs(ctx context.Context, contestID, categoryID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT nominee_id FROM votes WHERE contest_id = $1 AND category_id = $2
	`, contestID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ClearVoterVotes removes every vote cast by the voter.
func (s *Store) ClearVoterVotes(ctx context.Context, voterID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM votes WHERE voter_id = $1`, voterID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete voter votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// DeleteContestVotes removes every vote of the contest.
func (s *Store) DeleteContestVotes(ctx context.Context, contestID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM votes WHERE contest_id = $1`, contestID); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	return nil
}
