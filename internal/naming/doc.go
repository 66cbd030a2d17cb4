// Package naming derives canonical comparison keys from raw media folder names.
//
// Folder names collected from release groups carry annotations such as
// fansub tags, checksums, years, and resolution or source markers. Normalize
// strips those annotations so names that refer to the same title compare
// equal. The marker list is fixed at build time and the stripping order is
// significant: bracketed spans first, then resolution/source markers.
package naming
