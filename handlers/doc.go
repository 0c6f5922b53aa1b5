// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the awards API.

# Handler Types

Each handler is a struct built from the shared store and config:

  - VoteHandler: ballot loading, selection and confirmation
  - ResultsHandler: public results, sealed until reveal
  - AuthHandler: admin sign-in and session lookup
  - AdminHandler: contest, category, nominee and voter management

	voteHandler := handlers.NewVoteHandler(st, cfg)

# Voting Flow

Voters hold a token from their vote link:

	GET  /vote?token=...  → GetBallot (status, or the ballot when ready)
	POST /vote/select     → SelectNominee
	POST /vote/confirm    → ConfirmVote (writes one vote, advances)

Domain states such as an inactive link or an ended contest are returned
with HTTP 200 and a status field. Each voter's ballot lives in memory until
it finishes or sits idle past BALLOT_TTL.

# Admin

Admin routes expect a bearer session issued by POST /auth/login and an admin
profile. Error responses carry a details field with the underlying error.
Reset and delete return 403 unless ALLOW_ADMIN_RESET is set.
*/
package handlers
