// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

Rows as stored:

  - Contest: voting window (start_at, end_at) and optional reveal_at
  - Category: belongs to a contest, ordered by sort_order
  - Nominee: belongs to a category, at most MaxNomineesPerCategory
  - Voter: opaque code used as the voter's only credential
  - Vote: one append-only row per (voter, category)
  - User: admin sign-in identity

# Status Types

  - LoadStatus: outcome of resolving a voter token (invalidLink, inactiveLink,
    outOfPeriod, alreadyVoted, ready, error)
  - ResultsStatus: outcome of aggregating results (error, beforeReveal, ready)
  - BallotState: in-progress ballot state (idle, saving, finished, error, empty)

# Errors

Sentinel errors (ErrNotFound, ErrDuplicateVote, ErrNomineeLimit,
ErrResetDisabled, ErrInvalidCredentials, ErrContestExists) are matched with errors.Is.
ValidationError carries the offending field name.
*/
package models
