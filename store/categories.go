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

const categoryColumns = `id, contest_id, name, description, sort_order`

func scanCategory(row rowScanner) (models.Category, error) {
	var (
		c           models.Category
		description sql.NullString
	)
	if err := row.Scan(&c.ID, &c.ContestID, &c.Name, &description, &c.SortOrder); err != nil {
		return models.Category{}, err
	}
	c.Description = stringPtr(description)
	return c, nil
}

// ListCategories returns a contest's categories by sort_order ascending.
func (s *Store) ListCategories(ctx context.Context, contestID string) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE contest_id = $1
		ORDER BY sort_order ASC, name ASC
	`, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) GetCategory(ctx context.Context, id string) (models.Category, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, models.ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to query category: %w", err)
	}
	return c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *models.Category) error {
	c.ID = newID()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, contest_id, name, description, sort_order)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.ContestID, c.Name, nullString(c.Description), c.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c models.Category) error {
	err := s.execAffecting(ctx, `
		UPDATE categories SET name = $1, description = $2, sort_order = $3 WHERE id = $4
	`, c.Name, nullString(c.Description), c.SortOrder, c.ID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return err
}

// DeleteCategory removes the category's votes, nominees, and the category in one transaction.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete category votes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM nominees WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete category nominees: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category delete: %w", err)
	}
	return nil
}

// CategoryIDs returns the ids of every category in the contest.
func (s *Store) CategoryIDs(ctx context.Context, contestID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM categories WHERE contest_id = $1`, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category ids: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan category id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteContestCategories removes every category of the contest.
func (s *Store) DeleteContestCategories(ctx context.Context, contestID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE contest_id = $1`, contestID); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}
