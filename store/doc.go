// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the single data-access client for contests, categories,
nominees, voters, votes, and admin users.

One Store is built in main and injected into every service:

	st := store.New(conn)

Lookups by id return models.ErrNotFound when no row matches. InsertVote
returns models.ErrDuplicateVote on the (voter_id, category_id) unique index
for both SQLite and PostgreSQL.

Reset helpers (DeleteContestVotes, DeleteContestVoters,
DeleteNomineesForCategories, DeleteContestCategories, DeleteContest) are
single statements; ordering belongs to the caller.
*/
package store
