// Package report renders exact-duplicate and similarity findings.
//
// Text output mirrors the long-standing layout of section headers followed by
// key lines and indented folder names. Table output uses go-pretty and JSON
// output is indented for piping into other tools. Rendering never touches the
// scanned directory.
package report
