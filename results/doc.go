// Copyright (c) 2025 caiosouza15.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package results tallies votes and gates them behind a contest's reveal time.

Tally counts one category: total is the sum of nominee counts, percent is
count/total*100 (0 when nobody voted), and every nominee at the maximum
count wins when that maximum is above zero. Ties produce several winners.

Aggregator.Aggregate returns beforeReveal, with no nominee data, until
reveal_at has passed. After that it fetches all categories in parallel and
returns them in sort order, or an error outcome if any fetch failed.

Demo returns a fixed sample parsed from an embedded YAML fixture.
*/
package results
