// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// LoadStatus is the outcome of resolving a voter token.
type LoadStatus string

const (
	LoadInvalidLink  LoadStatus = "invalidLink"
	LoadInactiveLink LoadStatus = "inactiveLink"
	LoadOutOfPeriod  LoadStatus = "outOfPeriod"
	LoadAlreadyVoted LoadStatus = "alreadyVoted"
	LoadReady        LoadStatus = "ready"
	LoadError        LoadStatus = "error"
)

// ResultsStatus is the outcome of aggregating a contest's results.
type ResultsStatus string

const (
	ResultsError        ResultsStatus = "error"
	ResultsBeforeReveal ResultsStatus = "beforeReveal"
	ResultsReady        ResultsStatus = "ready"
)

// BallotState is the state of a voter's in-progress ballot.
type BallotState string

const (
	BallotIdle     BallotState = "idle"
	BallotSaving   BallotState = "saving"
	BallotFinished BallotState = "finished"
	BallotError    BallotState = "error"
	// BallotEmpty means the contest has no categories to vote on.
	BallotEmpty BallotState = "empty"
)
