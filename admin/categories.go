// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"fmt"

	"github.com/caiosouza15/seufirmino-awards/models"
)

// ListCategories returns the contest's categories with their nominees, both
// in sort order.
func (s *Service) ListCategories(ctx context.Context, contestID string) ([]models.CategoryWithNominees, error) {
	categories, err := s.store.ListCategories(ctx, contestID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	nominees, err := s.store.NomineesForCategories(ctx, ids)
	if err != nil {
		return nil, err
	}

	byCategory := map[string][]models.Nominee{}
	for _, n := range nominees {
		byCategory[n.CategoryID] = append(byCategory[n.CategoryID], n)
	}

	out := make([]models.CategoryWithNominees, len(categories))
	for i, c := range categories {
		list := byCategory[c.ID]
		if list == nil {
			list = []models.Nominee{}
		}
		out[i] = models.CategoryWithNominees{Category: c, Nominees: list}
	}
	return out, nil
}

// CreateCategory adds a category and returns the contest's refreshed list.
func (s *Service) CreateCategory(ctx context.Context, contestID string, req models.CategoryRequest) ([]models.CategoryWithNominees, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetContest(ctx, contestID); err != nil {
		return nil, err
	}

	c := models.Category{
		ContestID:   contestID,
		Name:        name,
		Description: optionalString(req.Description),
		SortOrder:   req.SortOrder,
	}
	if err := s.store.CreateCategory(ctx, &c); err != nil {
		return nil, err
	}
	return s.ListCategories(ctx, contestID)
}

func (s *Service) UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) ([]models.CategoryWithNominees, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = name
	c.Description = optionalString(req.Description)
	c.SortOrder = req.SortOrder
	if err := s.store.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return s.ListCategories(ctx, c.ContestID)
}

// DeleteCategory removes the category together with its nominees and votes.
func (s *Service) DeleteCategory(ctx context.Context, id string) ([]models.CategoryWithNominees, error) {
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return nil, err
	}
	return s.ListCategories(ctx, c.ContestID)
}

// AddNominee creates a nominee unless the category is already full.
func (s *Service) AddNominee(ctx context.Context, categoryID string, req models.NomineeRequest) ([]models.CategoryWithNominees, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	c, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountNominees(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check nominee limit: %w", err)
	}
	if count >= models.MaxNomineesPerCategory {
		return nil, models.ErrNomineeLimit
	}

	n := models.Nominee{
		CategoryID:  categoryID,
		Name:        name,
		Description: optionalString(req.Description),
		ImageURL:    optionalString(req.ImageURL),
		SortOrder:   req.SortOrder,
	}
	if err := s.store.CreateNominee(ctx, &n); err != nil {
		return nil, err
	}
	return s.ListCategories(ctx, c.ContestID)
}

func (s *Service) UpdateNominee(ctx context.Context, id string, req models.NomineeRequest) ([]models.CategoryWithNominees, error) {
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	n, err := s.store.GetNominee(ctx, id)
	if err != nil {
		return nil, err
	}

	n.Name = name
	n.Description = optionalString(req.Description)
	n.ImageURL = optionalString(req.ImageURL)
	n.SortOrder = req.SortOrder
	if err := s.store.UpdateNominee(ctx, n); err != nil {
		return nil, err
	}
	return s.listForCategory(ctx, n.CategoryID)
}

func (s *Service) DeleteNominee(ctx context.Context, id string) ([]models.CategoryWithNominees, error) {
	n, err := s.store.GetNominee(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteNominee(ctx, id); err != nil {
		return nil, err
	}
	return s.listForCategory(ctx, n.CategoryID)
}

// SetNomineeImage points the nominee at an uploaded image.
func (s *Service) SetNomineeImage(ctx context.Context, id, imageURL string) (models.Nominee, error) {
	if err := s.store.SetNomineeImage(ctx, id, imageURL); err != nil {
		return models.Nominee{}, err
	}
	return s.store.GetNominee(ctx, id)
}

// GetNominee is used to check a nominee exists before uploading its image.
func (s *Service) GetNominee(ctx context.Context, id string) (models.Nominee, error) {
	return s.store.GetNominee(ctx, id)
}

func (s *Service) listForCategory(ctx context.Context, categoryID string) ([]models.CategoryWithNominees, error) {
	c, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.ListCategories(ctx, c.ContestID)
}
