// Package collection holds the entries scanned from one source directory and
// groups them by canonical key.
//
// An Index is built once per run from the immediate subdirectories of the
// source. Exact-match groups are an explicitly owned mapping: callers must
// invoke RebuildExactGroups before querying duplicates, so a stale mapping is
// always visible at the call site rather than hidden behind lazy caching.
package collection
