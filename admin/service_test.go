// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiosouza15/seufirmino-awards/models"
	"github.com/caiosouza15/seufirmino-awards/store"
	"github.com/caiosouza15/seufirmino-awards/testutil"
)

func newTestService(t *testing.T, allowReset bool) (*Service, *store.Store) {
	t.Helper()
	st := store.New(testutil.SetupTestDB(t))
	return NewService(st, Capabilities{AllowReset: allowReset}, "http://awards.test/"), st
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Time
		wantErr bool
	}{
		{"2025-12-01T10:00:00Z", time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC), false},
		{"2025-12-01T10:00:00-03:00", time.Date(2025, 12, 1, 13, 0, 0, 0, time.UTC), false},
		{"2025-12-01T10:00", time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC), false},
		{"01/12/2025", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseTime("start_at", tt.value)
			if tt.wantErr {
				var verr *models.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "start_at", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v", got)
		})
	}
}

func TestCreateAndUpdateContest(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, false)

	_, err := svc.CreateContest(ctx, models.ContestRequest{StartAt: "2025-12-01T10:00", EndAt: "2025-12-02T10:00"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	c, err := svc.CreateContest(ctx, models.ContestRequest{
		Name:     "Awards",
		StartAt:  "2025-12-01T10:00",
		EndAt:    "2025-12-02T10:00",
		RevealAt: "2025-12-03T20:00",
	})
	require.NoError(t, err)
	assert.True(t, c.IsActive)
	require.NotNil(t, c.RevealAt)

	inactive := false
	updated, err := svc.UpdateContest(ctx, c.ID, models.ContestRequest{
		Name:     "Awards 2025",
		StartAt:  "2025-12-01T10:00",
		EndAt:    "2025-12-02T10:00",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Awards 2025", updated.Name)
	assert.Nil(t, updated.RevealAt, "empty reveal_at clears it")
	assert.False(t, updated.IsActive)

	_, err = svc.UpdateContest(ctx, "missing", models.ContestRequest{Name: "x", StartAt: "2025-12-01T10:00", EndAt: "2025-12-01T10:00"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateContestWithChosenID(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, false)

	req := models.ContestRequest{ID: " results ", Name: "Awards", StartAt: "2025-12-01T10:00", EndAt: "2025-12-02T10:00"}
	c, err := svc.CreateContest(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "results", c.ID)

	stored, err := st.GetContest(ctx, "results")
	require.NoError(t, err)
	assert.Equal(t, "Awards", stored.Name)

	_, err = svc.CreateContest(ctx, req)
	assert.ErrorIs(t, err, models.ErrContestExists)
}

func TestNomineeCap(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, false)
	conn := st.DB()

	contestID := testutil.CreateOpenContest(t, conn, nil)
	categoryID := testutil.AddTestCategory(t, conn, contestID, "Best", 1)

	for i := 0; i < models.MaxNomineesPerCategory; i++ {
		_, err := svc.AddNominee(ctx, categoryID, models.NomineeRequest{Name: "N", SortOrder: i})
		require.NoError(t, err)
	}

	_, err := svc.AddNominee(ctx, categoryID, models.NomineeRequest{Name: "Seventh"})
	assert.ErrorIs(t, err, models.ErrNomineeLimit)
	assert.Equal(t, models.MaxNomineesPerCategory, testutil.CountRows(t, conn, "nominees", "category_id = $1", categoryID))
}

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, false)
	conn := st.DB()

	contestID := testutil.CreateOpenContest(t, conn, nil)

	list, err := svc.CreateCategory(ctx, contestID, models.CategoryRequest{Name: "Second", SortOrder: 2})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = svc.CreateCategory(ctx, contestID, models.CategoryRequest{Name: "First", SortOrder: 1})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Name)
	assert.Empty(t, list[0].Nominees)

	list, err = svc.AddNominee(ctx, list[0].ID, models.NomineeRequest{Name: "Nominee"})
	require.NoError(t, err)
	require.Len(t, list[0].Nominees, 1)

	nomineeID := list[0].Nominees[0].ID
	list, err = svc.UpdateNominee(ctx, nomineeID, models.NomineeRequest{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", list[0].Nominees[0].Name)

	n, err := svc.SetNomineeImage(ctx, nomineeID, "http://awards.test/images/x.png")
	require.NoError(t, err)
	require.NotNil(t, n.ImageURL)

	list, err = svc.DeleteCategory(ctx, list[0].ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Second", list[0].Name)

	_, err = svc.CreateCategory(ctx, "missing", models.CategoryRequest{Name: "X"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateVoters(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, false)
	contestID := testutil.CreateOpenContest(t, st.DB(), nil)

	voters, err := svc.CreateVoters(ctx, contestID, 0)
	require.NoError(t, err)
	assert.Len(t, voters, 1)

	voters, err = svc.CreateVoters(ctx, contestID, 3)
	require.NoError(t, err)
	require.Len(t, voters, 4)
	for _, v := range voters {
		assert.True(t, v.IsActive)
		assert.Equal(t, "http://awards.test/vote?token="+v.Code, v.Link)
	}

	_, err = svc.CreateVoters(ctx, contestID, 201)
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	toggled, err := svc.ToggleVoter(ctx, voters[0].ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
	toggled, err = svc.ToggleVoter(ctx, voters[0].ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)
}

func TestClearVoterVotes(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, false)
	conn := st.DB()

	contestID := testutil.CreateOpenContest(t, conn, nil)
	categoryID := testutil.AddTestCategory(t, conn, contestID, "Best", 1)
	nomineeID := testutil.AddTestNominee(t, conn, categoryID, "N", 1)
	voterID, _ := testutil.CreateTestVoter(t, conn, contestID, true)
	testutil.AddTestVote(t, conn, contestID, categoryID, nomineeID, voterID)

	n, err := svc.ClearVoterVotes(ctx, voterID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = svc.ClearVoterVotes(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestResultsReadoutSortedByVotes(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, false)
	conn := st.DB()

	future := time.Now().Add(24 * time.Hour)
	contestID := testutil.CreateOpenContest(t, conn, &future)
	categoryID := testutil.AddTestCategory(t, conn, contestID, "Best", 1)
	low := testutil.AddTestNominee(t, conn, categoryID, "Low", 1)
	high := testutil.AddTestNominee(t, conn, categoryID, "High", 2)

	for i := 0; i < 3; i++ {
		voterID, _ := testutil.CreateTestVoter(t, conn, contestID, true)
		nominee := high
		if i == 0 {
			nominee = low
		}
		testutil.AddTestVote(t, conn, contestID, categoryID, nominee, voterID)
	}

	rows, err := svc.Results(ctx, contestID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "High", rows[0].Nominee)
	assert.Equal(t, 2, rows[0].Votes)
	assert.Equal(t, "66.7%", rows[0].PercentLabel)
	assert.Equal(t, "Low", rows[1].Nominee)
}

func TestResetContestAgainstStore(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t, true)
	conn := st.DB()

	contestID := testutil.CreateOpenContest(t, conn, nil)
	categoryID := testutil.AddTestCategory(t, conn, contestID, "Best", 1)
	nomineeID := testutil.AddTestNominee(t, conn, categoryID, "N", 1)
	voterID, _ := testutil.CreateTestVoter(t, conn, contestID, true)
	testutil.AddTestVote(t, conn, contestID, categoryID, nomineeID, voterID)

	require.NoError(t, svc.ResetContest(ctx, contestID))
	for _, table := range []string{"votes", "voters", "nominees", "categories"} {
		assert.Equal(t, 0, testutil.CountRows(t, conn, table, ""), table)
	}
	assert.Equal(t, 1, testutil.CountRows(t, conn, "contests", ""))

	require.NoError(t, svc.DeleteContest(ctx, contestID))
	assert.Equal(t, 0, testutil.CountRows(t, conn, "contests", ""))
}

func TestVoteLinkEscapesCode(t *testing.T) {
	svc := NewService(nil, Capabilities{}, "https://awards.test")
	link := svc.VoteLink("a b&c")
	assert.True(t, strings.HasPrefix(link, "https://awards.test/vote?token="))
	assert.Contains(t, link, "a+b%26c")
}
