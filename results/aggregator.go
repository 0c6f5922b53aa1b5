// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/caiosouza15/seufirmino-awards/models"
)

const (
	MsgLoadFailed  = "Could not load results."
	MsgNotRevealed = "Results have not been scheduled for reveal yet."
)

// Source is the read side the aggregator needs.
type Source interface {
	GetContest(ctx context.Context, id string) (models.Contest, error)
	ListCategories(ctx context.Context, contestID string) ([]models.Category, error)
	ListNominees(ctx context.Context, categoryID string) ([]models.Nominee, error)
	VoteNomineeIDs(ctx context.Context, contestID, categoryID string) ([]string, error)
}

// Outcome is what the public results page shows. Categories is empty unless
// Status is ready.
type Outcome struct {
	Status     models.ResultsStatus
	Message    string
	Contest    *models.Contest
	Categories []models.CategoryResult
}

type Aggregator struct {
	source Source
	now    func() time.Time
}

func NewAggregator(source Source, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{source: source, now: now}
}

// Aggregate tallies every category of the contest once its reveal time has
// passed. Any fetch failure discards partial results.
func (a *Aggregator) Aggregate(ctx context.Context, contestID string) Outcome {
	contest, err := a.source.GetContest(ctx, contestID)
	if err != nil {
		slog.Error("failed to load results contest", "contest_id", contestID, "error", err)
		return Outcome{Status: models.ResultsError, Message: MsgLoadFailed, Categories: []models.CategoryResult{}}
	}

	now := a.now()
	if contest.RevealAt == nil || now.Before(*contest.RevealAt) {
		return Outcome{
			Status:     models.ResultsBeforeReveal,
			Message:    beforeRevealMessage(contest.RevealAt, now),
			Contest:    &contest,
			Categories: []models.CategoryResult{},
		}
	}

	categories, err := a.tallyAll(ctx, contest.ID)
	if err != nil {
		slog.Error("failed to aggregate results", "contest_id", contest.ID, "error", err)
		return Outcome{Status: models.ResultsError, Message: MsgLoadFailed, Contest: &contest, Categories: []models.CategoryResult{}}
	}

	return Outcome{Status: models.ResultsReady, Contest: &contest, Categories: categories}
}

// tallyAll fetches each category's nominees and votes in parallel and keeps
// category order.
func (a *Aggregator) tallyAll(ctx context.Context, contestID string) ([]models.CategoryResult, error) {
	categories, err := a.source.ListCategories(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}

	out := make([]models.CategoryResult, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			nominees, err := a.source.ListNominees(gctx, category.ID)
			if err != nil {
				return fmt.Errorf("nominees for %s: %w", category.ID, err)
			}
			votes, err := a.source.VoteNomineeIDs(gctx, contestID, category.ID)
			if err != nil {
				return fmt.Errorf("votes for %s: %w", category.ID, err)
			}
			out[i] = Tally(category, nominees, votes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func beforeRevealMessage(revealAt *time.Time, now time.Time) string {
	if revealAt == nil {
		return MsgNotRevealed
	}
	return "Results will be revealed " + humanize.RelTime(*revealAt, now, "ago", "from now") + "."
}
