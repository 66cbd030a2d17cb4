package collection

import (
	"path/filepath"

	"sieve/internal/naming"
)

// Entry is one scanned folder. CanonicalKey is always naming.Normalize(RawName).
type Entry struct {
	RawName      string `json:"raw_name"`
	SourcePath   string `json:"source_path"`
	CanonicalKey string `json:"canonical_key"`
}

// NewEntry builds an entry for a folder name found under source.
func NewEntry(source, rawName string) Entry {
	return Entry{
		RawName:      rawName,
		SourcePath:   source,
		CanonicalKey: naming.Normalize(rawName),
	}
}

// Path returns the folder location as source/rawName.
func (e Entry) Path() string {
	if e.SourcePath == "" {
		return e.RawName
	}
	return filepath.Join(e.SourcePath, e.RawName)
}
