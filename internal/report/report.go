package report

import (
	"sieve/internal/cluster"
	"sieve/internal/collection"
)

// Report is the complete set of findings for one source directory.
type Report struct {
	Source     string                  `json:"source"`
	Entries    int                     `json:"entries"`
	Duplicates []collection.ExactGroup `json:"duplicates"`
	Similar    []cluster.Group         `json:"similar"`
	Singletons []cluster.Group         `json:"singletons,omitempty"`
}

// Build assembles a report from an index whose exact groups have been rebuilt
// and the similarity groups computed from its entries.
func Build(index *collection.Index, groups *cluster.Groups, includeSingletons bool) Report {
	r := Report{
		Source:     index.Source(),
		Entries:    index.Len(),
		Duplicates: index.Duplicates(),
		Similar:    groups.Findings(),
	}
	if includeSingletons {
		r.Singletons = groups.Singletons()
	}
	if r.Duplicates == nil {
		r.Duplicates = []collection.ExactGroup{}
	}
	if r.Similar == nil {
		r.Similar = []cluster.Group{}
	}
	return r
}
