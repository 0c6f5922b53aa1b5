// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateVote      = errors.New("vote already recorded for this category")
	ErrNomineeLimit       = fmt.Errorf("category already has %d nominees", MaxNomineesPerCategory)
	ErrResetDisabled      = errors.New("reset and delete operations are disabled")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrContestExists      = errors.New("a contest with this id already exists")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
