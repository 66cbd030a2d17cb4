package cluster

import "sieve/internal/collection"

// Group is a set of entries filed under one representative key.
type Group struct {
	Key     string             `json:"key"`
	Entries []collection.Entry `json:"entries"`
}

// Groups maps representative keys to entries, remembering the order in which
// keys were first produced.
type Groups struct {
	keys    []string
	members map[string][]collection.Entry
}

func newGroups() *Groups {
	return &Groups{members: make(map[string][]collection.Entry)}
}

func (g *Groups) add(key string, entry collection.Entry) {
	if _, ok := g.members[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.members[key] = append(g.members[key], entry)
}

// Len returns the number of groups, singletons included.
func (g *Groups) Len() int {
	return len(g.keys)
}

// Keys returns the representative keys in first-produced order.
func (g *Groups) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Get returns the entries filed under key.
func (g *Groups) Get(key string) []collection.Entry {
	entries := g.members[key]
	if entries == nil {
		return nil
	}
	out := make([]collection.Entry, len(entries))
	copy(out, entries)
	return out
}

// All returns every group, singletons included.
func (g *Groups) All() []Group {
	out := make([]Group, 0, len(g.keys))
	for _, key := range g.keys {
		out = append(out, Group{Key: key, Entries: g.Get(key)})
	}
	return out
}

// Findings returns only groups with at least two entries.
func (g *Groups) Findings() []Group {
	var out []Group
	for _, key := range g.keys {
		if len(g.members[key]) < 2 {
			continue
		}
		out = append(out, Group{Key: key, Entries: g.Get(key)})
	}
	return out
}

// Singletons returns the groups holding exactly one entry.
func (g *Groups) Singletons() []Group {
	var out []Group
	for _, key := range g.keys {
		if len(g.members[key]) != 1 {
			continue
		}
		out = append(out, Group{Key: key, Entries: g.Get(key)})
	}
	return out
}
