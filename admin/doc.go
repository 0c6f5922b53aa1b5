// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package admin implements the admin console: contests, categories, nominees,
voter links, the results readout, and contest reset.

Mutations that change a list return the refreshed list.

A category holds at most models.MaxNomineesPerCategory nominees; the count
is checked before any insert.

ResetContest and DeleteContest return models.ErrResetDisabled without
touching the store unless Capabilities.AllowReset is set. A reset deletes
votes, voters, nominees, and categories in that order and stops at the
first failure with a *ResetError naming the step.
*/
package admin
