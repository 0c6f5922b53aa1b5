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

const contestColumns = `id, name, description, start_at, end_at, reveal_at, is_active, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContest(row rowScanner) (models.Contest, error) {
	var (
		c           models.Contest
		description sql.NullString
		revealAt    sql.NullTime
	)
	err := row.Scan(&c.ID, &c.Name, &description, &c.StartAt, &c.EndAt, &revealAt, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return models.Contest{}, err
	}
	c.Description = stringPtr(description)
	c.RevealAt = timePtr(revealAt)
	c.StartAt = c.StartAt.UTC()
	c.EndAt = c.EndAt.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

// ListContests returns all contests, newest first.
func (s *Store) ListContests(ctx context.Context) ([]models.Contest, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+contestColumns+` FROM contests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contests: %w", err)
	}
	defer rows.Close()

	contests := []models.Contest{}
	for rows.Next() {
		c, err := scanContest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contest: %w", err)
		}
		contests = append(contests, c)
	}
	return contests, rows.Err()
}

// GetContest returns models.ErrNotFound when no contest has the id.
func (s *Store) GetContest(ctx context.Context, id string) (models.Contest, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contestColumns+` FROM contests WHERE id = $1`, id)
	c, err := scanContest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contest{}, models.ErrNotFound
	}
	if err != nil {
		return models.Contest{}, fmt.Errorf("failed to query contest: %w", err)
	}
	return c, nil
}

// CreateContest assigns CreatedAt, and ID unless the caller chose one, then
// inserts the row. A taken ID returns models.ErrContestExists.
func (s *Store) CreateContest(ctx context.Context, c *models.Contest) error {
	if c.ID == "" {
		c.ID = newID()
	}
	c.CreatedAt = now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contests (id, name, description, start_at, end_at, reveal_at, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.ID, c.Name, nullString(c.Description), c.StartAt.UTC(), c.EndAt.UTC(), nullTime(c.RevealAt), c.IsActive, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrContestExists
		}
		return fmt.Errorf("failed to insert contest: %w", err)
	}
	return nil
}

func (s *Store) UpdateContest(ctx context.Context, c models.Contest) error {
	err := s.execAffecting(ctx, `
		UPDATE contests
		SET name = $1, description = $2, start_at = $3, end_at = $4, reveal_at = $5, is_active = $6
		WHERE id = $7
	`, c.Name, nullString(c.Description), c.StartAt.UTC(), c.EndAt.UTC(), nullTime(c.RevealAt), c.IsActive, c.ID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to update contest: %w", err)
	}
	return err
}

// DeleteContest removes only the contest row. Dependent rows must already be gone.
func (s *Store) DeleteContest(ctx context.Context, id string) error {
	err := s.execAffecting(ctx, `DELETE FROM contests WHERE id = $1`, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to delete contest: %w", err)
	}
	return err
}
