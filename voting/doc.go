// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting resolves voter links and walks voters through their ballot.

# Loader

Loader.Load runs a gate chain and stops at the first failure:

	token present → voter exists → voter active → contest exists →
	within [start_at, end_at] → no prior vote → categories → nominees

Each failure maps to a models.LoadStatus and a fixed voter-facing message.
Time comes from the injected clock.

# Flow

A Flow presents one category at a time:

	idle ──confirm──▶ saving ──ok──▶ idle (next category) or finished
	                         └─fail─▶ error ──select/confirm──▶ ...

Only one write may be in flight; a second Confirm gets ErrSubmissionInFlight.
A duplicate vote for the category is treated as already recorded.
A contest with no categories starts and stays in the empty state.

# Sessions

Sessions keeps one Flow per voter code between requests and expires idle
flows after a TTL.
*/
package voting
