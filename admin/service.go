// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"strings"
	"time"

	"github.com/caiosouza15/seufirmino-awards/models"
)

// Store is the data access the admin service needs.
type Store interface {
	ListContests(ctx context.Context) ([]models.Contest, error)
	GetContest(ctx context.Context, id string) (models.Contest, error)
	CreateContest(ctx context.Context, c *models.Contest) error
	UpdateContest(ctx context.Context, c models.Contest) error
	DeleteContest(ctx context.Context, id string) error

	ListCategories(ctx context.Context, contestID string) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, c models.Category) error
	DeleteCategory(ctx context.Context, id string) error
	CategoryIDs(ctx context.Context, contestID string) ([]string, error)
	DeleteContestCategories(ctx context.Context, contestID string) error

	ListNominees(ctx context.Context, categoryID string) ([]models.Nominee, error)
	NomineesForCategories(ctx context.Context, categoryIDs []string) ([]models.Nominee, error)
	GetNominee(ctx context.Context, id string) (models.Nominee, error)
	CountNominees(ctx context.Context, categoryID string) (int, error)
	CreateNominee(ctx context.Context, n *models.Nominee) error
	UpdateNominee(ctx context.Context, n models.Nominee) error
	SetNomineeImage(ctx context.Context, id, imageURL string) error
	DeleteNominee(ctx context.Context, id string) error
	DeleteNomineesForCategories(ctx context.Context, categoryIDs []string) error

	ListVoters(ctx context.Context, contestID string) ([]models.Voter, error)
	GetVoter(ctx context.Context, id string) (models.Voter, error)
	CreateVoter(ctx context.Context, v *models.Voter) error
	SetVoterActive(ctx context.Context, id string, active bool) error
	DeleteContestVoters(ctx context.Context, contestID string) error

	VoteNomineeIDs(ctx context.Context, contestID, categoryID string) ([]string, error)
	ClearVoterVotes(ctx context.Context, voterID string) (int64, error)
	DeleteContestVotes(ctx context.Context, contestID string) error
}

// Capabilities are fixed at startup and tell clients which destructive
// operations are available.
type Capabilities struct {
	AllowReset bool
}

// Service implements the admin console operations.
type Service struct {
	store   Store
	caps    Capabilities
	baseURL string
}

func NewService(store Store, caps Capabilities, baseURL string) *Service {
	return &Service{
		store:   store,
		caps:    caps,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *Service) Capabilities() Capabilities {
	return s.caps
}

// Form inputs arrive as "2006-01-02T15:04" and are read as UTC.
const formTimeLayout = "2006-01-02T15:04"

func parseTime(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, &models.ValidationError{Field: field, Message: "is required"}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(formTimeLayout, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, &models.ValidationError{Field: field, Message: "must be RFC 3339 or YYYY-MM-DDTHH:MM"}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &models.ValidationError{Field: "name", Message: "is required"}
	}
	return name, nil
}
