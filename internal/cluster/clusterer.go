package cluster

import (
	"log/slog"

	"sieve/internal/collection"
	"sieve/internal/logging"
	"sieve/internal/similarity"
)

// Clusterer files entries under representative keys using a Scorer.
type Clusterer struct {
	scorer similarity.Scorer
	logger *slog.Logger
}

// New returns a Clusterer. A nil scorer falls back to similarity.PartialRatio
// and a nil logger discards output.
func New(scorer similarity.Scorer, logger *slog.Logger) *Clusterer {
	if scorer == nil {
		scorer = similarity.PartialRatio
	}
	return &Clusterer{
		scorer: scorer,
		logger: logging.NewComponentLogger(logger, "cluster"),
	}
}

// FindSimilarGroups groups entries with the default metric and no logging.
func FindSimilarGroups(entries []collection.Entry) *Groups {
	return New(nil, nil).FindSimilarGroups(entries)
}

// FindSimilarGroups files every entry, in scan order, under the key returned
// by KeyFor. The pass is O(n²) in the number of entries.
func (c *Clusterer) FindSimilarGroups(entries []collection.Entry) *Groups {
	groups := newGroups()
	for _, target := range entries {
		groups.add(c.KeyFor(target, entries), target)
	}
	c.logger.Debug("similarity pass complete",
		logging.Int("entries", len(entries)),
		logging.Int("groups", groups.Len()),
		logging.Int("findings", len(groups.Findings())),
	)
	return groups
}

// KeyFor returns the smallest canonical key among target and every other
// entry scoring exactly similarity.MatchScore against it. Entries sharing the
// target's raw name are treated as the target itself and skipped. Pairs the
// scorer cannot compute are skipped.
func (c *Clusterer) KeyFor(target collection.Entry, entries []collection.Entry) string {
	key := target.CanonicalKey
	for _, other := range entries {
		if other.RawName == target.RawName {
			continue
		}
		matched, err := c.match(target.CanonicalKey, other.CanonicalKey)
		if err != nil {
			c.logger.Debug("similarity score skipped",
				logging.String(logging.FieldRawName, target.RawName),
				logging.String("other_raw_name", other.RawName),
				logging.Error(err),
			)
			continue
		}
		if !matched {
			continue
		}
		if other.CanonicalKey < key {
			key = other.CanonicalKey
		}
		c.logger.Debug("similar key matched",
			logging.String(logging.FieldCanonicalKey, target.CanonicalKey),
			logging.String("other_canonical_key", other.CanonicalKey),
			logging.Int("score", similarity.MatchScore),
			logging.String(logging.FieldGroupKey, key),
		)
	}
	return key
}

// match reports whether a and b score similarity.MatchScore, using the
// scorer's Matcher fast path when it has one.
func (c *Clusterer) match(a, b string) (bool, error) {
	if m, ok := c.scorer.(similarity.Matcher); ok {
		return m.Match(a, b)
	}
	score, err := c.scorer.Score(a, b)
	return score == similarity.MatchScore, err
}
