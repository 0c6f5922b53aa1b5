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

func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.queryUser(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`, email)
}

func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.queryUser(ctx, `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (s *Store) queryUser(ctx context.Context, query string, arg string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

// IsAdmin reports whether the user has an admin profile.
func (s *Store) IsAdmin(ctx context.Context, userID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_profiles WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query admin profile: %w", err)
	}
	return count > 0, nil
}

// UpsertAdminUser creates the user or replaces its password, then grants admin.
func (s *Store) UpsertAdminUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var u models.User
	err = tx.QueryRowContext(ctx, `SELECT id, email, created_at FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		u = models.User{ID: newID(), Email: email, CreatedAt: now()}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)
		`, u.ID, u.Email, passwordHash, u.CreatedAt)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to insert user: %w", err)
		}
	case err != nil:
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	default:
		if _, err := tx.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, passwordHash, u.ID); err != nil {
			return models.User{}, fmt.Errorf("failed to update user: %w", err)
		}
	}
	u.PasswordHash = passwordHash

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_profiles WHERE user_id = $1`, u.ID).Scan(&count); err != nil {
		return models.User{}, fmt.Errorf("failed to query admin profile: %w", err)
	}
	if count == 0 {
		_, err = tx.ExecContext(ctx, `INSERT INTO admin_profiles (user_id, created_at) VALUES ($1, $2)`, u.ID, now())
		if err != nil {
			return models.User{}, fmt.Errorf("failed to insert admin profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("failed to commit admin user: %w", err)
	}
	return u, nil
}

// CreateUser inserts a user without admin rights.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	u := models.User{ID: newID(), Email: email, PasswordHash: passwordHash, CreatedAt: now()}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)
	`, u.ID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}
