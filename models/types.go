// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// MaxNomineesPerCategory caps how many nominees a single category may hold.
const MaxNomineesPerCategory = 6

// Domain types

type Contest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	RevealAt    *time.Time `json:"reveal_at,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Category struct {
	ID          string  `json:"id"`
	ContestID   string  `json:"contest_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	SortOrder   int     `json:"sort_order"`
}

type Nominee struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	SortOrder   int     `json:"sort_order"`
}

type Voter struct {
	ID        string    `json:"id"`
	ContestID string    `json:"contest_id"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Vote struct {
	ID         string    `json:"id"`
	ContestID  string    `json:"contest_id"`
	CategoryID string    `json:"category_id"`
	NomineeID  string    `json:"nominee_id"`
	VoterID    string    `json:"voter_id"`
	IPAddress  *string   `json:"-"` // Never expose in JSON
	UserAgent  *string   `json:"-"` // Never expose in JSON
	CreatedAt  time.Time `json:"created_at"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CategoryWithNominees groups a category with its nominees in sort order.
type CategoryWithNominees struct {
	Category
	Nominees []Nominee `json:"nominees"`
}

// Result types

type NomineeResult struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ImageURL     *string `json:"image_url,omitempty"`
	TotalVotes   int     `json:"total_votes"`
	Percent      float64 `json:"percent"`
	PercentLabel string  `json:"percent_label"`
	IsWinner     bool    `json:"is_winner"`
}

type CategoryResult struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	TotalVotes int             `json:"total_votes"`
	WinnerIDs  []string        `json:"winner_ids"`
	Tied       bool            `json:"tied"`
	Nominees   []NomineeResult `json:"nominees"`
}

// ResultRow is one line of the admin results readout.
type ResultRow struct {
	CategoryID   string  `json:"category_id"`
	Category     string  `json:"category"`
	NomineeID    string  `json:"nominee_id"`
	Nominee      string  `json:"nominee"`
	Votes        int     `json:"votes"`
	Percent      float64 `json:"percent"`
	PercentLabel string  `json:"percent_label"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}
