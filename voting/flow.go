// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/caiosouza15/seufirmino-awards/models"
)

// MsgVoteFailed is shown when a confirmed vote could not be written.
const MsgVoteFailed = "Could not record your vote. Please try again."

var (
	ErrSubmissionInFlight = errors.New("a vote is already being recorded")
	ErrBallotClosed       = errors.New("ballot is closed")
	ErrNoSelection        = errors.New("no nominee selected")
	ErrUnknownNominee     = errors.New("nominee is not part of the current category")
	ErrVoteFailed         = errors.New("vote not recorded")
)

// VoteWriter records a single vote.
type VoteWriter interface {
	InsertVote(ctx context.Context, v *models.Vote) error
}

// VoteMeta is request metadata stored alongside a vote.
type VoteMeta struct {
	IPAddress *string
	UserAgent *string
}

// Flow walks a voter through the contest's categories one at a time.
// It only moves forward and allows one write in flight.
type Flow struct {
	mu sync.Mutex

	contest    models.Contest
	voter      models.Voter
	categories []models.CategoryWithNominees

	index    int
	selected string
	state    models.BallotState
	message  string
}

// NewFlow starts a flow from a ready loader result.
func NewFlow(res Result) *Flow {
	f := &Flow{
		categories: res.Categories,
		state:      models.BallotIdle,
	}
	if res.Contest != nil {
		f.contest = *res.Contest
	}
	if res.Voter != nil {
		f.voter = *res.Voter
	}
	if len(f.categories) == 0 {
		f.state = models.BallotEmpty
	}
	return f
}

// Select records the voter's pick for the current category. Selecting after a
// failed write clears the error.
func (f *Flow) Select(nomineeID string) (models.BallotSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkOpen(); err != nil {
		return f.snapshotLocked(), err
	}
	if !f.inCurrentCategory(nomineeID) {
		return f.snapshotLocked(), ErrUnknownNominee
	}

	f.selected = nomineeID
	if f.state == models.BallotError {
		f.state = models.BallotIdle
		f.message = ""
	}
	return f.snapshotLocked(), nil
}

// Confirm writes the selected vote for the current category and advances.
// A duplicate vote for the category counts as recorded. On any other write
// failure the flow keeps its category and selection and moves to error.
func (f *Flow) Confirm(ctx context.Context, w VoteWriter, meta VoteMeta) (models.BallotSnapshot, error) {
	return f.confirm(ctx, w, "", meta)
}

// ConfirmNominee selects nomineeID and confirms it without releasing the
// lock in between, so a concurrent Select cannot change the recorded pick.
func (f *Flow) ConfirmNominee(ctx context.Context, w VoteWriter, nomineeID string, meta VoteMeta) (models.BallotSnapshot, error) {
	return f.confirm(ctx, w, nomineeID, meta)
}

func (f *Flow) confirm(ctx context.Context, w VoteWriter, nomineeID string, meta VoteMeta) (models.BallotSnapshot, error) {
	f.mu.Lock()
	if err := f.checkOpen(); err != nil {
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, err
	}
	if nomineeID != "" {
		if !f.inCurrentCategory(nomineeID) {
			snap := f.snapshotLocked()
			f.mu.Unlock()
			return snap, ErrUnknownNominee
		}
		f.selected = nomineeID
	}
	if f.selected == "" {
		snap := f.snapshotLocked()
		f.mu.Unlock()
		return snap, ErrNoSelection
	}

	f.state = models.BallotSaving
	vote := models.Vote{
		ContestID:  f.contest.ID,
		CategoryID: f.categories[f.index].ID,
		NomineeID:  f.selected,
		VoterID:    f.voter.ID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
	}
	f.mu.Unlock()

	err := w.InsertVote(ctx, &vote)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil && !errors.Is(err, models.ErrDuplicateVote) {
		f.state = models.BallotError
		f.message = MsgVoteFailed
		return f.snapshotLocked(), fmt.Errorf("%w: %v", ErrVoteFailed, err)
	}

	f.message = ""
	f.selected = ""
	if f.index == len(f.categories)-1 {
		f.state = models.BallotFinished
	} else {
		f.index++
		f.state = models.BallotIdle
	}
	return f.snapshotLocked(), nil
}

// Snapshot returns the voter-visible state of the flow.
func (f *Flow) Snapshot() models.BallotSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Done reports whether the flow accepts no more input.
func (f *Flow) Done() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == models.BallotFinished || f.state == models.BallotEmpty
}

func (f *Flow) checkOpen() error {
	switch f.state {
	case models.BallotSaving:
		return ErrSubmissionInFlight
	case models.BallotFinished, models.BallotEmpty:
		return ErrBallotClosed
	}
	return nil
}

func (f *Flow) inCurrentCategory(nomineeID string) bool {
	for _, n := range f.categories[f.index].Nominees {
		if n.ID == nomineeID {
			return true
		}
	}
	return false
}

func (f *Flow) snapshotLocked() models.BallotSnapshot {
	snap := models.BallotSnapshot{
		State:             f.state,
		ContestID:         f.contest.ID,
		ContestName:       f.contest.Name,
		TotalSteps:        len(f.categories),
		Nominees:          []models.Nominee{},
		SelectedNomineeID: f.selected,
		Message:           f.message,
	}
	if f.state == models.BallotEmpty || f.state == models.BallotFinished {
		snap.Step = len(f.categories)
		return snap
	}

	current := f.categories[f.index]
	category := current.Category
	snap.Step = f.index + 1
	snap.Category = &category
	snap.Nominees = current.Nominees
	return snap
}
