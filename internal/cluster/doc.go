// Package cluster groups collection entries whose canonical keys are
// near-identical under a partial similarity metric.
//
// Grouping is a single pass. Each entry is compared against every other entry
// and is filed under the lexicographically smallest key among itself and the
// entries it matched with a perfect score. The result is not transitive: two
// entries land in the same group only if their individual minimums agree, and
// no fixed-point iteration or union-find merging is performed. Keys are
// running minimums, not stable cluster identifiers.
package cluster
