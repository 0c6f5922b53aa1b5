// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"log/slog"

	"github.com/caiosouza15/seufirmino-awards/models"
)

// Reset steps, in execution order.
const (
	StepLoadCategories   = "load categories"
	StepDeleteVotes      = "delete votes"
	StepDeleteVoters     = "delete voters"
	StepDeleteNominees   = "delete nominees"
	StepDeleteCategories = "delete categories"
	StepDeleteContest    = "delete contest"
)

var stepMessages = map[string]string{
	StepLoadCategories:   "Could not load the contest's categories. Nothing was deleted.",
	StepDeleteVotes:      "Could not delete votes. Nothing else was deleted.",
	StepDeleteVoters:     "Votes were deleted, but voters could not be deleted.",
	StepDeleteNominees:   "Votes and voters were deleted, but nominees could not be deleted.",
	StepDeleteCategories: "Only categories remain; they could not be deleted.",
	StepDeleteContest:    "The contest was emptied, but the contest itself could not be deleted.",
}

// ResetError reports the step at which a reset stopped.
type ResetError struct {
	Step string
	Err  error
}

func (e *ResetError) Error() string {
	return "reset failed at " + e.Step + ": " + e.Err.Error()
}

func (e *ResetError) Unwrap() error {
	return e.Err
}

// Message is a human readable account of how far the reset got.
func (e *ResetError) Message() string {
	if msg, ok := stepMessages[e.Step]; ok {
		return msg
	}
	return "Reset failed."
}

// ResetContest deletes a contest's votes, voters, nominees, and categories,
// in that order, keeping the contest row. The first failing step aborts the
// rest. Earlier steps are not rolled back.
func (s *Service) ResetContest(ctx context.Context, contestID string) error {
	if !s.caps.AllowReset {
		return models.ErrResetDisabled
	}

	categoryIDs, err := s.store.CategoryIDs(ctx, contestID)
	if err != nil {
		return &ResetError{Step: StepLoadCategories, Err: err}
	}
	if err := s.store.DeleteContestVotes(ctx, contestID); err != nil {
		return &ResetError{Step: StepDeleteVotes, Err: err}
	}
	if err := s.store.DeleteContestVoters(ctx, contestID); err != nil {
		return &ResetError{Step: StepDeleteVoters, Err: err}
	}
	if len(categoryIDs) > 0 {
		if err := s.store.DeleteNomineesForCategories(ctx, categoryIDs); err != nil {
			return &ResetError{Step: StepDeleteNominees, Err: err}
		}
	}
	if err := s.store.DeleteContestCategories(ctx, contestID); err != nil {
		return &ResetError{Step: StepDeleteCategories, Err: err}
	}

	slog.Info("contest reset", "contest_id", contestID, "categories", len(categoryIDs))
	return nil
}

// DeleteContest resets the contest and then removes the contest row.
func (s *Service) DeleteContest(ctx context.Context, contestID string) error {
	if !s.caps.AllowReset {
		return models.ErrResetDisabled
	}
	if _, err := s.store.GetContest(ctx, contestID); err != nil {
		return err
	}

	if err := s.ResetContest(ctx, contestID); err != nil {
		return err
	}
	if err := s.store.DeleteContest(ctx, contestID); err != nil {
		return &ResetError{Step: StepDeleteContest, Err: err}
	}

	slog.Info("contest deleted", "contest_id", contestID)
	return nil
}
