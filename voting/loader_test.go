// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caiosouza15/seufirmino-awards/models"
)

var errBackend = errors.New("backend down")

type fakeBackend struct {
	voters     map[string]models.Voter
	contests   map[string]models.Contest
	voted      map[string]bool
	categories []models.Category
	nominees   []models.Nominee

	voterErr, contestErr, votedErr, categoriesErr, nomineesErr error

	nomineeCalls int
}

func (b *fakeBackend) VoterByCode(_ context.Context, code string) (models.Voter, error) {
	if b.voterErr != nil {
		return models.Voter{}, b.voterErr
	}
	v, ok := b.voters[code]
	if !ok {
		return models.Voter{}, models.ErrNotFound
	}
	return v, nil
}

func (b *fakeBackend) GetContest(_ context.Context, id string) (models.Contest, error) {
	if b.contestErr != nil {
		return models.Contest{}, b.contestErr
	}
	c, ok := b.contests[id]
	if !ok {
		return models.Contest{}, models.ErrNotFound
	}
	return c, nil
}

func (b *fakeBackend) HasVoted(_ context.Context, voterID, _ string) (bool, error) {
	return b.voted[voterID], b.votedErr
}

func (b *fakeBackend) ListCategories(context.Context, string) ([]models.Category, error) {
	return b.categories, b.categoriesErr
}

func (b *fakeBackend) NomineesForCategories(context.Context, []string) ([]models.Nominee, error) {
	b.nomineeCalls++
	return b.nominees, b.nomineesErr
}

var loaderNow = time.Date(2025, 12, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return loaderNow }

func readyBackend() *fakeBackend {
	return &fakeBackend{
		voters: map[string]models.Voter{
			"tok":      {ID: "v1", ContestID: "c1", Code: "tok", IsActive: true},
			"inactive": {ID: "v2", ContestID: "c1", Code: "inactive", IsActive: false},
			"orphan":   {ID: "v3", ContestID: "gone", Code: "orphan", IsActive: true},
		},
		contests: map[string]models.Contest{
			"c1": {ID: "c1", Name: "Awards", StartAt: loaderNow.Add(-time.Hour), EndAt: loaderNow.Add(time.Hour)},
		},
		voted: map[string]bool{},
		categories: []models.Category{
			{ID: "cat1", ContestID: "c1", Name: "First", SortOrder: 1},
			{ID: "cat2", ContestID: "c1", Name: "Second", SortOrder: 2},
		},
		nominees: []models.Nominee{
			{ID: "n1", CategoryID: "cat1", Name: "A", SortOrder: 1},
			{ID: "n3", CategoryID: "cat2", Name: "C", SortOrder: 1},
			{ID: "n2", CategoryID: "cat1", Name: "B", SortOrder: 2},
		},
	}
}

func TestLoadReady(t *testing.T) {
	b := readyBackend()
	res := NewLoader(b, fixedClock).Load(context.Background(), " tok ")

	require.Equal(t, models.LoadReady, res.Status)
	require.NotNil(t, res.Contest)
	require.NotNil(t, res.Voter)
	assert.Equal(t, "c1", res.Contest.ID)
	require.Len(t, res.Categories, 2)
	assert.Equal(t, "cat1", res.Categories[0].ID)
	require.Len(t, res.Categories[0].Nominees, 2)
	assert.Equal(t, "n1", res.Categories[0].Nominees[0].ID)
	assert.Equal(t, "n2", res.Categories[0].Nominees[1].ID)
	assert.Len(t, res.Categories[1].Nominees, 1)
}

func TestLoadGates(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		modify     func(b *fakeBackend)
		wantStatus models.LoadStatus
		wantMsg    string
	}{
		{"empty token", "", nil, models.LoadInvalidLink, MsgTokenMissing},
		{"unknown token", "nope", nil, models.LoadInvalidLink, MsgTokenInvalid},
		{"voter lookup fails", "tok", func(b *fakeBackend) { b.voterErr = errBackend }, models.LoadError, MsgTokenCheckFailed},
		{"inactive voter", "inactive", nil, models.LoadInactiveLink, MsgLinkInactive},
		{"missing contest", "orphan", nil, models.LoadInvalidLink, MsgContestMissing},
		{"contest lookup fails", "tok", func(b *fakeBackend) { b.contestErr = errBackend }, models.LoadError, MsgContestLoadFailed},
		{"voting ended", "tok", func(b *fakeBackend) {
			c := b.contests["c1"]
			c.EndAt = loaderNow.Add(-time.Minute)
			b.contests["c1"] = c
		}, models.LoadOutOfPeriod, MsgVotingEnded},
		{"already voted", "tok", func(b *fakeBackend) { b.voted["v1"] = true }, models.LoadAlreadyVoted, MsgAlreadyVoted},
		{"vote check fails", "tok", func(b *fakeBackend) { b.votedErr = errBackend }, models.LoadError, MsgVoteCheckFailed},
		{"categories fail", "tok", func(b *fakeBackend) { b.categoriesErr = errBackend }, models.LoadError, MsgCategoriesFailed},
		{"nominees fail", "tok", func(b *fakeBackend) { b.nomineesErr = errBackend }, models.LoadError, MsgNomineesLoadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := readyBackend()
			if tt.modify != nil {
				tt.modify(b)
			}
			res := NewLoader(b, fixedClock).Load(context.Background(), tt.token)

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Nil(t, res.Contest)
			assert.Nil(t, res.Categories)
		})
	}
}

func TestLoadNotStarted(t *testing.T) {
	b := readyBackend()
	c := b.contests["c1"]
	c.StartAt = loaderNow.Add(3 * time.Hour)
	c.EndAt = loaderNow.Add(5 * time.Hour)
	b.contests["c1"] = c

	res := NewLoader(b, fixedClock).Load(context.Background(), "tok")

	assert.Equal(t, models.LoadOutOfPeriod, res.Status)
	assert.True(t, strings.HasPrefix(res.Message, "Voting has not started yet. Opens "), res.Message)
	assert.Contains(t, res.Message, "3 hours from now")
}

func TestLoadBoundariesInclusive(t *testing.T) {
	b := readyBackend()
	c := b.contests["c1"]
	c.StartAt = loaderNow
	c.EndAt = loaderNow
	b.contests["c1"] = c

	res := NewLoader(b, fixedClock).Load(context.Background(), "tok")
	assert.Equal(t, models.LoadReady, res.Status)
}

func TestLoadNoCategoriesSkipsNominees(t *testing.T) {
	b := readyBackend()
	b.categories = []models.Category{}

	res := NewLoader(b, fixedClock).Load(context.Background(), "tok")

	assert.Equal(t, models.LoadReady, res.Status)
	assert.Empty(t, res.Categories)
	assert.Equal(t, 0, b.nomineeCalls)
}

func TestCheckLiveBallot(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		modify     func(b *fakeBackend)
		wantStatus models.LoadStatus
		wantMsg    string
	}{
		{"partially voted", "tok", func(b *fakeBackend) { b.voted["v1"] = true }, models.LoadReady, ""},
		{"voter deactivated", "tok", func(b *fakeBackend) {
			v := b.voters["tok"]
			v.IsActive = false
			b.voters["tok"] = v
		}, models.LoadInactiveLink, MsgLinkInactive},
		{"voter removed by reset", "tok", func(b *fakeBackend) { delete(b.voters, "tok") }, models.LoadInvalidLink, MsgTokenInvalid},
		{"voting ended", "tok", func(b *fakeBackend) {
			c := b.contests["c1"]
			c.EndAt = loaderNow.Add(-time.Second)
			b.contests["c1"] = c
		}, models.LoadOutOfPeriod, MsgVotingEnded},
		{"contest lookup fails", "tok", func(b *fakeBackend) { b.contestErr = errBackend }, models.LoadError, MsgContestLoadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := readyBackend()
			tt.modify(b)
			res := NewLoader(b, fixedClock).Check(context.Background(), tt.token)

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Nil(t, res.Categories, "Check never loads the ballot")
			assert.Equal(t, 0, b.nomineeCalls)
		})
	}
}
