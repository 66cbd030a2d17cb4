package collection

import "strings"

// Lister enumerates the immediate subdirectory names of a path.
type Lister interface {
	ListDirs(path string) ([]string, error)
}

// ExactGroup is the ordered list of raw names sharing one canonical key.
type ExactGroup struct {
	Key      string   `json:"key"`
	RawNames []string `json:"raw_names"`
}

// Index holds the entries of one source directory in scan order.
type Index struct {
	source  string
	entries []Entry

	exact     map[string][]string
	exactKeys []string
}

// Load lists the subdirectories of source and builds an Index from them.
// Listing failures are reported as ErrSourceUnavailable.
func Load(source string, lister Lister) (*Index, error) {
	if strings.TrimSpace(source) == "" {
		return nil, sourceUnavailable("(empty path)", nil)
	}
	if lister == nil {
		return nil, sourceUnavailable(source, nil)
	}
	names, err := lister.ListDirs(source)
	if err != nil {
		return nil, sourceUnavailable(source, err)
	}
	return NewIndex(source, names), nil
}

// NewIndex builds an Index from folder names already listed from source.
func NewIndex(source string, names []string) *Index {
	idx := &Index{
		source:  source,
		entries: make([]Entry, 0, len(names)),
	}
	for _, name := range names {
		idx.entries = append(idx.entries, NewEntry(source, name))
	}
	return idx
}

// Source returns the scanned directory.
func (i *Index) Source() string {
	return i.source
}

// Len returns the number of entries.
func (i *Index) Len() int {
	return len(i.entries)
}

// Entries returns a copy of the entries in scan order.
func (i *Index) Entries() []Entry {
	out := make([]Entry, len(i.entries))
	copy(out, i.entries)
	return out
}

// RebuildExactGroups discards the exact-match mapping and recomputes it from
// the current entries.
func (i *Index) RebuildExactGroups() {
	i.exact = make(map[string][]string, len(i.entries))
	i.exactKeys = i.exactKeys[:0]
	for _, entry := range i.entries {
		key := entry.CanonicalKey
		if _, ok := i.exact[key]; !ok {
			i.exactKeys = append(i.exactKeys, key)
		}
		i.exact[key] = append(i.exact[key], entry.RawName)
	}
}

// FindDuplicates returns every canonical key whose raw-name list does not
// have exactly one member, in the order keys were first seen.
// The result is empty until RebuildExactGroups has been called.
func (i *Index) FindDuplicates() []string {
	var keys []string
	for _, key := range i.exactKeys {
		if len(i.exact[key]) != 1 {
			keys = append(keys, key)
		}
	}
	return keys
}

// ExactGroup returns the raw names mapped to key as of the last rebuild.
func (i *Index) ExactGroup(key string) []string {
	names := i.exact[key]
	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ExactGroups returns the full exact-match mapping in first-seen key order.
func (i *Index) ExactGroups() []ExactGroup {
	groups := make([]ExactGroup, 0, len(i.exactKeys))
	for _, key := range i.exactKeys {
		groups = append(groups, ExactGroup{Key: key, RawNames: i.ExactGroup(key)})
	}
	return groups
}

// Duplicates returns the exact groups selected by FindDuplicates.
func (i *Index) Duplicates() []ExactGroup {
	keys := i.FindDuplicates()
	groups := make([]ExactGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, ExactGroup{Key: key, RawNames: i.ExactGroup(key)})
	}
	return groups
}
