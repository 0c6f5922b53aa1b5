// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/caiosouza15/seufirmino-awards/models"
)

const voterColumns = `id, contest_id, code, is_active, created_at`

func scanVoter(row rowScanner) (models.Voter, error) {
	var v models.Voter
	if err := row.Scan(&v.ID, &v.ContestID, &v.Code, &v.IsActive, &v.CreatedAt); err != nil {
		return models.Voter{}, err
	}
	v.CreatedAt = v.CreatedAt.UTC()
	return v, nil
}

// VoterByCode looks up a voter by the code embedded in their vote link.
func (s *Store) VoterByCode(ctx context.Context, code string) (models.Voter, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+voterColumns+` FROM voters WHERE code = $1`, code)
	v, err := scanVoter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Voter{}, models.ErrNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to query voter: %w", err)
	}
	return v, nil
}

func (s *Store) GetVoter(ctx context.Context, id string) (models.Voter, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+voterColumns+` FROM voters WHERE id = $1`, id)
	v, err := scanVoter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Voter{}, models.ErrNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to query voter: %w", err)
	}
	return v, nil
}

// ListVoters returns a contest's voters, newest first.
func (s *Store) ListVoters(ctx context.Context, contestID string) ([]models.Voter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+voterColumns+`
		FROM voters
		WHERE contest_id = $1
		ORDER BY created_at DESC
	`, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		v, err := scanVoter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, v)
	}
	return voters, rows.Err()
}

// CreateVoter inserts a voter whose Code is already set.
func (s *Store) CreateVoter(ctx context.Context, v *models.Voter) error {
	v.ID = newID()
	v.CreatedAt = now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO voters (id, contest_id, code, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.ContestID, v.Code, v.IsActive, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert voter: %w", err)
	}
	return nil
}

func (s *Store) SetVoterActive(ctx context.Context, id string, active bool) error {
	err := s.execAffecting(ctx, `UPDATE voters SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to update voter: %w", err)
	}
	return err
}

// DeleteContestVoters removes every voter of the contest.
func (s *Store) DeleteContestVoters(ctx context.Context, contestID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM voters WHERE contest_id = $1`, contestID); err != nil {
		return fmt.Errorf("failed to delete voters: %w", err)
	}
	return nil
}
