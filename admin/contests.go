// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"strings"

	"github.com/caiosouza15/seufirmino-awards/models"
)

func (s *Service) ListContests(ctx context.Context) ([]models.Contest, error) {
	return s.store.ListContests(ctx)
}

func contestFromRequest(req models.ContestRequest) (models.Contest, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return models.Contest{}, err
	}
	startAt, err := parseTime("start_at", req.StartAt)
	if err != nil {
		return models.Contest{}, err
	}
	endAt, err := parseTime("end_at", req.EndAt)
	if err != nil {
		return models.Contest{}, err
	}

	c := models.Contest{
		Name:        name,
		Description: optionalString(req.Description),
		StartAt:     startAt,
		EndAt:       endAt,
		IsActive:    true,
	}
	if strings.TrimSpace(req.RevealAt) != "" {
		revealAt, err := parseTime("reveal_at", req.RevealAt)
		if err != nil {
			return models.Contest{}, err
		}
		c.RevealAt = &revealAt
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	return c, nil
}

func (s *Service) CreateContest(ctx context.Context, req models.ContestRequest) (models.Contest, error) {
	c, err := contestFromRequest(req)
	if err != nil {
		return models.Contest{}, err
	}
	c.ID = strings.TrimSpace(req.ID)
	if err := s.store.CreateContest(ctx, &c); err != nil {
		return models.Contest{}, err
	}
	return c, nil
}

// UpdateContest replaces the contest's editable fields. An empty reveal_at clears it.
func (s *Service) UpdateContest(ctx context.Context, id string, req models.ContestRequest) (models.Contest, error) {
	existing, err := s.store.GetContest(ctx, id)
	if err != nil {
		return models.Contest{}, err
	}

	c, err := contestFromRequest(req)
	if err != nil {
		return models.Contest{}, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if req.IsActive == nil {
		c.IsActive = existing.IsActive
	}

	if err := s.store.UpdateContest(ctx, c); err != nil {
		return models.Contest{}, err
	}
	return c, nil
}
