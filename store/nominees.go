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

const nomineeColumns = `id, category_id, name, description, image_url, sort_order`

func scanNominee(row rowScanner) (models.Nominee, error) {
	var (
		n           models.Nominee
		description sql.NullString
		imageURL    sql.NullString
	)
	if err := row.Scan(&n.ID, &n.CategoryID, &n.Name, &description, &imageURL, &n.SortOrder); err != nil {
		return models.Nominee{}, err
	}
	n.Description = stringPtr(description)
	n.ImageURL = stringPtr(imageURL)
	return n, nil
}

func (s *Store) queryNominees(ctx context.Context, query string, args ...any) ([]models.Nominee, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query nominees: %w", err)
	}
	defer rows.Close()

	nominees := []models.Nominee{}
	for rows.Next() {
		n, err := scanNominee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan nominee: %w", err)
		}
		nominees = append(nominees, n)
	}
	return nominees, rows.Err()
}

// ListNominees returns a category's nominees by sort_order ascending.
func (s *Store) ListNominees(ctx context.Context, categoryID string) ([]models.Nominee, error) {
	return s.queryNominees(ctx, `
		SELECT `+nomineeColumns+`
		FROM nominees
		WHERE category_id = $1
		ORDER BY sort_order ASC, name ASC
	`, categoryID)
}

// NomineesForCategories returns nominees of all given categories by sort_order ascending.
func (s *Store) NomineesForCategories(ctx context.Context, categoryIDs []string) ([]models.Nominee, error) {
	if len(categoryIDs) == 0 {
		return []models.Nominee{}, nil
	}
	return s.queryNominees(ctx, `
		SELECT `+nomineeColumns+`
		FROM nominees
		WHERE category_id IN (`+placeholders(1, len(categoryIDs))+`)
		ORDER BY sort_order ASC, name ASC
	`, stringArgs(categoryIDs)...)
}

func (s *Store) GetNominee(ctx context.Context, id string) (models.Nominee, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+nomineeColumns+` FROM nominees WHERE id = $1`, id)
	n, err := scanNominee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Nominee{}, models.ErrNotFound
	}
	if err != nil {
		return models.Nominee{}, fmt.Errorf("failed to query nominee: %w", err)
	}
	return n, nil
}

func (s *Store) CountNominees(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM nominees WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count nominees: %w", err)
	}
	return count, nil
}

func (s *Store) CreateNominee(ctx context.Context, n *models.Nominee) error {
	n.ID = newID()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO nominees (id, category_id, name, description, image_url, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, n.ID, n.CategoryID, n.Name, nullString(n.Description), nullString(n.ImageURL), n.SortOrder)
	if err != nil {
		return fmt.Errorf("failed to insert nominee: %w", err)
	}
	return nil
}

func (s *Store) UpdateNominee(ctx context.Context, n models.Nominee) error {
	err := s.execAffecting(ctx, `
		UPDATE nominees SET name = $1, description = $2, image_url = $3, sort_order = $4 WHERE id = $5
	`, n.Name, nullString(n.Description), nullString(n.ImageURL), n.SortOrder, n.ID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to update nominee: %w", err)
	}
	return err
}

func (s *Store) SetNomineeImage(ctx context.Context, id, imageURL string) error {
	err := s.execAffecting(ctx, `UPDATE nominees SET image_url = $1 WHERE id = $2`, imageURL, id)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to set nominee image: %w", err)
	}
	return err
}

// DeleteNominee removes the nominee and the votes cast for it.
func (s *Store) DeleteNominee(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes WHERE nominee_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete nominee votes: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM nominees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete nominee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit nominee delete: %w", err)
	}
	return nil
}

// DeleteNomineesForCategories removes nominees belonging to any of the categories.
func (s *Store) DeleteNomineesForCategories(ctx context.Context, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM nominees WHERE category_id IN (`+placeholders(1, len(categoryIDs))+`)`,
		stringArgs(categoryIDs)...)
	if err != nil {
		return fmt.Errorf("failed to delete nominees: %w", err)
	}
	return nil
}
