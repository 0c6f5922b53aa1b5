// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Times are RFC 3339 or "2006-01-02T15:04" (read as UTC). Empty reveal_at clears it.
// ID is honored on create only; empty means a generated UUID.
type ContestRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	RevealAt    string `json:"reveal_at"`
	IsActive    *bool  `json:"is_active"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

type NomineeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	SortOrder   int    `json:"sort_order"`
}

type CreateVotersRequest struct {
	Count int `json:"count"`
}

type SelectNomineeRequest struct {
	Token     string `json:"token"`
	NomineeID string `json:"nominee_id"`
}

type ConfirmVoteRequest struct {
	Token     string `json:"token"`
	NomineeID string `json:"nominee_id,omitempty"`
}

// Response types

type LoginResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	IsAdmin bool   `json:"is_admin"`
}

type MeResponse struct {
	User    User `json:"user"`
	IsAdmin bool `json:"is_admin"`
}

type CapabilitiesResponse struct {
	AllowReset bool `json:"allow_reset"`
}

type VoterWithLink struct {
	Voter
	Link string `json:"link"`
}

// BallotSnapshot is what a voter sees of their in-progress ballot.
type BallotSnapshot struct {
	State             BallotState `json:"state"`
	ContestID         string      `json:"contest_id"`
	ContestName       string      `json:"contest_name"`
	Step              int         `json:"step"` // 1-indexed
	TotalSteps        int         `json:"total_steps"`
	Category          *Category   `json:"category,omitempty"`
	Nominees          []Nominee   `json:"nominees"`
	SelectedNomineeID string      `json:"selected_nominee_id,omitempty"`
	Message           string      `json:"message,omitempty"`
}

type VoteStatusResponse struct {
	Status  LoadStatus      `json:"status"`
	Message string          `json:"message,omitempty"`
	Ballot  *BallotSnapshot `json:"ballot,omitempty"`
}

type ResultsResponse struct {
	Status     ResultsStatus    `json:"status"`
	Message    string           `json:"message,omitempty"`
	Contest    *Contest         `json:"contest,omitempty"`
	Categories []CategoryResult `json:"categories"`
	Demo       bool             `json:"demo,omitempty"`
}

type ResetResponse struct {
	ContestID string `json:"contest_id"`
	Deleted   bool   `json:"deleted"`
	Message   string `json:"message"`
}

type ClearVotesResponse struct {
	VoterID string `json:"voter_id"`
	Deleted int64  `json:"deleted"`
}
