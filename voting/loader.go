// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/caiosouza15/seufirmino-awards/models"
)

// Voter-facing loader messages
const (
	MsgTokenMissing       = "Voting token not found. Use the link you were sent."
	MsgTokenInvalid       = "Invalid or expired token."
	MsgTokenCheckFailed   = "Could not validate token."
	MsgLinkInactive       = "Inactive link. Ask for a new token."
	MsgContestMissing     = "Contest not found for this token."
	MsgContestLoadFailed  = "Could not load contest."
	MsgVotingEnded        = "Voting period has ended."
	MsgAlreadyVoted       = "You have already cast your votes for this contest."
	MsgVoteCheckFailed    = "Could not check previous votes."
	MsgCategoriesFailed   = "Could not load categories."
	MsgNomineesLoadFailed = "Could not load nominees."
)

// Backend is the read side the loader needs.
type Backend interface {
	VoterByCode(ctx context.Context, code string) (models.Voter, error)
	GetContest(ctx context.Context, id string) (models.Contest, error)
	HasVoted(ctx context.Context, voterID, contestID string) (bool, error)
	ListCategories(ctx context.Context, contestID string) ([]models.Category, error)
	NomineesForCategories(ctx context.Context, categoryIDs []string) ([]models.Nominee, error)
}

// Result is the outcome of resolving a voter token. Contest, Voter, and
// Categories are set only when Status is ready.
type Result struct {
	Status     models.LoadStatus
	Message    string
	Contest    *models.Contest
	Voter      *models.Voter
	Categories []models.CategoryWithNominees
}

// Loader resolves a voter token into everything needed to vote, or the
// first gate that failed.
type Loader struct {
	backend Backend
	now     func() time.Time
}

func NewLoader(backend Backend, now func() time.Time) *Loader {
	if now == nil {
		now = time.Now
	}
	return &Loader{backend: backend, now: now}
}

func fail(status models.LoadStatus, message string) Result {
	return Result{Status: status, Message: message}
}

// Load runs the gate chain and stops at the first failing gate.
func (l *Loader) Load(ctx context.Context, token string) Result {
	voter, contest, res := l.gates(ctx, token)
	if res.Status != models.LoadReady {
		return res
	}

	voted, err := l.backend.HasVoted(ctx, voter.ID, contest.ID)
	if err != nil {
		slog.Error("failed to check previous votes", "voter_id", voter.ID, "error", err)
		return fail(models.LoadError, MsgVoteCheckFailed)
	}
	if voted {
		return fail(models.LoadAlreadyVoted, MsgAlreadyVoted)
	}

	categories, err := l.backend.ListCategories(ctx, contest.ID)
	if err != nil {
		slog.Error("failed to load categories", "contest_id", contest.ID, "error", err)
		return fail(models.LoadError, MsgCategoriesFailed)
	}

	var nominees []models.Nominee
	if len(categories) > 0 {
		ids := make([]string, len(categories))
		for i, c := range categories {
			ids[i] = c.ID
		}
		nominees, err = l.backend.NomineesForCategories(ctx, ids)
		if err != nil {
			slog.Error("failed to load nominees", "contest_id", contest.ID, "error", err)
			return fail(models.LoadError, MsgNomineesLoadFailed)
		}
	}

	return Result{
		Status:     models.LoadReady,
		Contest:    &contest,
		Voter:      &voter,
		Categories: groupNominees(categories, nominees),
	}
}

// Check re-runs the link and period gates for a ballot already in
// progress. Previous votes are expected at that point and are not checked.
func (l *Loader) Check(ctx context.Context, token string) Result {
	_, _, res := l.gates(ctx, token)
	return res
}

// gates validates the token, the voter and the contest period.
func (l *Loader) gates(ctx context.Context, token string) (models.Voter, models.Contest, Result) {
	token = strings.TrimSpace(token)
	if token == "" {
		return models.Voter{}, models.Contest{}, fail(models.LoadInvalidLink, MsgTokenMissing)
	}

	voter, err := l.backend.VoterByCode(ctx, token)
	if errors.Is(err, models.ErrNotFound) {
		return voter, models.Contest{}, fail(models.LoadInvalidLink, MsgTokenInvalid)
	}
	if err != nil {
		slog.Error("failed to look up voter", "error", err)
		return voter, models.Contest{}, fail(models.LoadError, MsgTokenCheckFailed)
	}
	if !voter.IsActive {
		return voter, models.Contest{}, fail(models.LoadInactiveLink, MsgLinkInactive)
	}

	contest, err := l.backend.GetContest(ctx, voter.ContestID)
	if errors.Is(err, models.ErrNotFound) {
		return voter, contest, fail(models.LoadInvalidLink, MsgContestMissing)
	}
	if err != nil {
		slog.Error("failed to load contest", "contest_id", voter.ContestID, "error", err)
		return voter, contest, fail(models.LoadError, MsgContestLoadFailed)
	}

	now := l.now()
	if now.Before(contest.StartAt) {
		return voter, contest, fail(models.LoadOutOfPeriod, notStartedMessage(contest.StartAt, now))
	}
	if now.After(contest.EndAt) {
		return voter, contest, fail(models.LoadOutOfPeriod, MsgVotingEnded)
	}
	return voter, contest, Result{Status: models.LoadReady}
}

// groupNominees attaches nominees to their category, keeping both orders.
func groupNominees(categories []models.Category, nominees []models.Nominee) []models.CategoryWithNominees {
	byCategory := make(map[string][]models.Nominee, len(categories))
	for _, n := range nominees {
		byCategory[n.CategoryID] = append(byCategory[n.CategoryID], n)
	}

	grouped := make([]models.CategoryWithNominees, len(categories))
	for i, c := range categories {
		list := byCategory[c.ID]
		if list == nil {
			list = []models.Nominee{}
		}
		grouped[i] = models.CategoryWithNominees{Category: c, Nominees: list}
	}
	return grouped
}

func notStartedMessage(start, now time.Time) string {
	return "Voting has not started yet. Opens " + humanize.RelTime(start, now, "ago", "from now") + "."
}
