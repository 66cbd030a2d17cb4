// Package fsscan lists the immediate subdirectories of a source directory.
//
// Listing goes through an afero.Fs so the CLI can scan the real filesystem
// while tests build media trees in memory. Only directory names are read; file
// contents, sizes, and timestamps are never touched and nothing is written.
package fsscan
