// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiosouza15/seufirmino-awards/models"
)

type recordingWriter struct {
	mu    sync.Mutex
	votes []models.Vote
	err   error
	// release, when set, blocks every write until closed
	release chan struct{}
	started chan struct{}
}

func (w *recordingWriter) InsertVote(_ context.Context, v *models.Vote) error {
	if w.started != nil {
		w.started <- struct{}{}
	}
	if w.release != nil {
		<-w.release
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.votes = append(w.votes, *v)
	return nil
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.votes)
}

func twoCategoryResult() Result {
	contest := models.Contest{ID: "c1", Name: "Awards"}
	voter := models.Voter{ID: "v1", ContestID: "c1", IsActive: true}
	return Result{
		Status:  models.LoadReady,
		Contest: &contest,
		Voter:   &voter,
		Categories: []models.CategoryWithNominees{
			{Category: models.Category{ID: "cat1", Name: "First"}, Nominees: []models.Nominee{{ID: "n1", CategoryID: "cat1"}, {ID: "n2", CategoryID: "cat1"}}},
			{Category: models.Category{ID: "cat2", Name: "Second"}, Nominees: []models.Nominee{{ID: "n3", CategoryID: "cat2"}}},
		},
	}
}

func TestFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	w := &recordingWriter{}
	f := NewFlow(twoCategoryResult())

	snap := f.Snapshot()
	assert.Equal(t, models.BallotIdle, snap.State)
	assert.Equal(t, 1, snap.Step)
	assert.Equal(t, 2, snap.TotalSteps)
	assert.Equal(t, "cat1", snap.Category.ID)

	_, err := f.Select("n2")
	require.NoError(t, err)
	snap, err = f.Confirm(ctx, w, VoteMeta{})
	require.NoError(t, err)
	assert.Equal(t, models.BallotIdle, snap.State)
	assert.Equal(t, 2, snap.Step)
	assert.Empty(t, snap.SelectedNomineeID)

	_, err = f.Select("n3")
	require.NoError(t, err)
	snap, err = f.Confirm(ctx, w, VoteMeta{})
	require.NoError(t, err)
	assert.Equal(t, models.BallotFinished, snap.State)
	assert.True(t, f.Done())

	require.Equal(t, 2, w.count())
	assert.Equal(t, models.Vote{ContestID: "c1", CategoryID: "cat1", NomineeID: "n2", VoterID: "v1"}, w.votes[0])
	assert.Equal(t, "cat2", w.votes[1].CategoryID)

	_, err = f.Select("n3")
	assert.ErrorIs(t, err, ErrBallotClosed)
	_, err = f.Confirm(ctx, w, VoteMeta{})
	assert.ErrorIs(t, err, ErrBallotClosed)
	assert.Equal(t, 2, w.count())
}

func TestFlowConfirmWithoutSelection(t *testing.T) {
	w := &recordingWriter{}
	f := NewFlow(twoCategoryResult())

	snap, err := f.Confirm(context.Background(), w, VoteMeta{})
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, models.BallotIdle, snap.State)
	assert.Equal(t, 0, w.count())
}

func TestFlowRejectsNomineeFromOtherCategory(t *testing.T) {
	f := NewFlow(twoCategoryResult())

	_, err := f.Select("n3")
	assert.ErrorIs(t, err, ErrUnknownNominee)
	assert.Empty(t, f.Snapshot().SelectedNomineeID)
}

func TestFlowWriteFailureRetainsPosition(t *testing.T) {
	ctx := context.Background()
	w := &recordingWriter{err: errors.New("insert failed")}
	f := NewFlow(twoCategoryResult())

	_, err := f.Select("n1")
	require.NoError(t, err)
	snap, err := f.Confirm(ctx, w, VoteMeta{})
	assert.ErrorIs(t, err, ErrVoteFailed)
	assert.Equal(t, models.BallotError, snap.State)
	assert.Equal(t, MsgVoteFailed, snap.Message)
	assert.Equal(t, 1, snap.Step)
	assert.Equal(t, "n1", snap.SelectedNomineeID)

	// Selecting again returns the flow to idle
	snap, err = f.Select("n2")
	require.NoError(t, err)
	assert.Equal(t, models.BallotIdle, snap.State)
	assert.Empty(t, snap.Message)

	// Retry from error succeeds once the backend recovers
	w.err = nil
	snap, err = f.Confirm(ctx, w, VoteMeta{})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Step)
}

func TestFlowRetryFromErrorWithoutReselect(t *testing.T) {
	ctx := context.Background()
	w := &recordingWriter{err: errors.New("insert failed")}
	f := NewFlow(twoCategoryResult())

	f.Select("n1")
	f.Confirm(ctx, w, VoteMeta{})

	w.err = nil
	snap, err := f.Confirm(ctx, w, VoteMeta{})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Step)
	assert.Equal(t, "n1", w.votes[0].NomineeID)
}

func TestFlowDuplicateCountsAsRecorded(t *testing.T) {
	w := &recordingWriter{err: models.ErrDuplicateVote}
	f := NewFlow(twoCategoryResult())

	f.Select("n1")
	snap, err := f.Confirm(context.Background(), w, VoteMeta{})
	require.NoError(t, err)
	assert.Equal(t, models.BallotIdle, snap.State)
	assert.Equal(t, 2, snap.Step)
}

func TestFlowEmptyContest(t *testing.T) {
	res := twoCategoryResult()
	res.Categories = nil
	f := NewFlow(res)

	snap := f.Snapshot()
	assert.Equal(t, models.BallotEmpty, snap.State)
	assert.Equal(t, 0, snap.TotalSteps)
	assert.Nil(t, snap.Category)
	assert.True(t, f.Done())

	_, err := f.Select("n1")
	assert.ErrorIs(t, err, ErrBallotClosed)
}

func TestFlowConcurrentConfirmSingleWrite(t *testing.T) {
	ctx := context.Background()
	w := &recordingWriter{release: make(chan struct{}), started: make(chan struct{}, 1)}
	f := NewFlow(twoCategoryResult())
	f.Select("n1")

	done := make(chan error, 1)
	go func() {
		_, err := f.Confirm(ctx, w, VoteMeta{})
		done <- err
	}()

	select {
	case <-w.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first confirm never reached the writer")
	}

	// Second confirm while the first is saving
	snap, err := f.Confirm(ctx, w, VoteMeta{})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, models.BallotSaving, snap.State)
	_, err = f.Select("n2")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(w.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, w.count())
	assert.Equal(t, 2, f.Snapshot().Step)
}

func TestFlowConfirmNominee(t *testing.T) {
	ctx := context.Background()
	w := &recordingWriter{}
	f := NewFlow(twoCategoryResult())

	_, err := f.Select("n2")
	require.NoError(t, err)

	snap, err := f.ConfirmNominee(ctx, w, "n3", VoteMeta{})
	assert.ErrorIs(t, err, ErrUnknownNominee)
	assert.Equal(t, "n2", snap.SelectedNomineeID, "rejected pick leaves the selection alone")
	assert.Equal(t, 0, w.count())

	snap, err = f.ConfirmNominee(ctx, w, "n1", VoteMeta{})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Step)
	require.Equal(t, 1, w.count())
	assert.Equal(t, "n1", w.votes[0].NomineeID)
}

func TestFlowConfirmNomineeHoldsSelection(t *testing.T) {
	ctx := context.Background()
	w := &recordingWriter{release: make(chan struct{}), started: make(chan struct{}, 1)}
	f := NewFlow(twoCategoryResult())

	done := make(chan error, 1)
	go func() {
		_, err := f.ConfirmNominee(ctx, w, "n1", VoteMeta{})
		done <- err
	}()

	select {
	case <-w.started:
	case <-time.After(2 * time.Second):
		t.Fatal("confirm never reached the writer")
	}

	// A select from another tab cannot replace the pick being written
	_, err := f.Select("n2")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(w.release)
	require.NoError(t, <-done)
	require.Equal(t, 1, w.count())
	assert.Equal(t, "n1", w.votes[0].NomineeID)
}
