// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/caiosouza15/seufirmino-awards/auth"
	"github.com/caiosouza15/seufirmino-awards/models"
)

const (
	defaultVoterBatch = 1
	maxVoterBatch     = 200
)

// VoteLink is the URL a voter opens to cast their ballot.
func (s *Service) VoteLink(code string) string {
	return s.baseURL + "/vote?token=" + url.QueryEscape(code)
}

func (s *Service) ListVoters(ctx context.Context, contestID string) ([]models.VoterWithLink, error) {
	voters, err := s.store.ListVoters(ctx, contestID)
	if err != nil {
		return nil, err
	}

	out := make([]models.VoterWithLink, len(voters))
	for i, v := range voters {
		out[i] = models.VoterWithLink{Voter: v, Link: s.VoteLink(v.Code)}
	}
	return out, nil
}

// CreateVoters issues count new voter codes (default 1, max 200) and returns
// the contest's refreshed voter list.
func (s *Service) CreateVoters(ctx context.Context, contestID string, count int) ([]models.VoterWithLink, error) {
	if count == 0 {
		count = defaultVoterBatch
	}
	if count < 0 || count > maxVoterBatch {
		return nil, &models.ValidationError{Field: "count", Message: "must be between 1 and 200"}
	}
	if _, err := s.store.GetContest(ctx, contestID); err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		v := models.Voter{ContestID: contestID, Code: auth.GenerateVoterCode(), IsActive: true}
		if err := s.store.CreateVoter(ctx, &v); err != nil {
			return nil, err
		}
	}
	slog.Info("voters created", "contest_id", contestID, "count", count)

	return s.ListVoters(ctx, contestID)
}

// ToggleVoter flips the voter's active flag.
func (s *Service) ToggleVoter(ctx context.Context, id string) (models.VoterWithLink, error) {
	v, err := s.store.GetVoter(ctx, id)
	if err != nil {
		return models.VoterWithLink{}, err
	}
	v.IsActive = !v.IsActive
	if err := s.store.SetVoterActive(ctx, id, v.IsActive); err != nil {
		return models.VoterWithLink{}, err
	}
	return models.VoterWithLink{Voter: v, Link: s.VoteLink(v.Code)}, nil
}

// ClearVoterVotes deletes the voter's votes so they can vote again.
func (s *Service) ClearVoterVotes(ctx context.Context, id string) (int64, error) {
	if _, err := s.store.GetVoter(ctx, id); err != nil {
		return 0, err
	}
	n, err := s.store.ClearVoterVotes(ctx, id)
	if err != nil {
		return 0, err
	}
	slog.Info("voter votes cleared", "voter_id", id, "deleted", n)
	return n, nil
}
